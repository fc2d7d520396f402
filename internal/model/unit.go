package model

import "fmt"

// Unit is the kind of a chess piece, which determines its movement rules.
type Unit uint8

const (
	Pawn Unit = iota
	Rook
	Knight
	Bishop
	Queen
	King
)

func (u Unit) String() string {
	switch u {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return fmt.Sprintf("unit(%d)", u)
	}
}

func ParseUnit(s string) (Unit, error) {
	switch s {
	case "pawn":
		return Pawn, nil
	case "rook":
		return Rook, nil
	case "knight":
		return Knight, nil
	case "bishop":
		return Bishop, nil
	case "queen":
		return Queen, nil
	case "king":
		return King, nil
	default:
		return Pawn, fmt.Errorf("invalid unit %q", s)
	}
}

func (u Unit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
