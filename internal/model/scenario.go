package model

import (
	"errors"
	"fmt"
)

// ErrUnknownScenario is returned when game construction names a scenario
// that does not exist. Starting in an unintended layout is a correctness
// hazard for automated tests, so this fails fast instead of substituting the
// default.
var ErrUnknownScenario = errors.New("unknown scenario")

// ScenarioBoard builds the board for the named scenario. The empty name
// selects the standard starting layout.
func ScenarioBoard(name string) (*Board, error) {
	switch name {
	case "":
		return StandardBoard(), nil
	case "castle":
		return castleBoard(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
}

// Scenarios lists the named test layouts.
func Scenarios() []string {
	return []string{"castle"}
}

// castleBoard places exactly a White rook at column 0 and a White king at
// column 3 of row 0, for exercising the castle move.
func castleBoard() *Board {
	b := &Board{}
	b.Set(Coord{X: 0, Y: 0}, &Piece{Unit: Rook, Player: White})
	b.Set(Coord{X: 3, Y: 0}, &Piece{Unit: King, Player: White})
	return b
}
