package model

// Snapshot is the read-only view of a game handed to renderers and to the
// persistence layer. Board cells are deep copies; mutating a snapshot never
// touches the live game.
type Snapshot struct {
	Board        [8][8]*Piece    `json:"board"`
	ToMove       Player          `json:"toMove"`
	Selected     []Coord         `json:"selected"`
	Scenario     string          `json:"scenario"`
	Fog          bool            `json:"fog"`
	SinglePlayer bool            `json:"singlePlayer"`
	Visible      *VisibilityMask `json:"visible,omitempty"`
}

// Snapshot captures the current state. The visibility mask is included only
// when fog is enabled; without fog the whole board is in view and the
// renderer needs no mask.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		ToMove:       g.turn,
		Selected:     g.selected.Coords(),
		Scenario:     g.scenario,
		Fog:          g.fog,
		SinglePlayer: g.singlePlayer,
	}
	g.board.Squares(func(x, y int, p *Piece) bool {
		if p != nil {
			copied := *p
			snap.Board[y][x] = &copied
		}
		return true
	})
	if g.fog {
		mask := g.Visible()
		snap.Visible = &mask
	}
	return snap
}

// RestoreGame rebuilds a game from a snapshot, for example one loaded from
// the store after a restart. The scenario name is re-validated so Reset
// keeps working on the restored game.
func RestoreGame(snap Snapshot) (*Game, error) {
	if _, err := ScenarioBoard(snap.Scenario); err != nil {
		return nil, err
	}
	g := &Game{
		board:        &Board{},
		turn:         snap.ToMove,
		scenario:     snap.Scenario,
		fog:          snap.Fog,
		singlePlayer: snap.SinglePlayer,
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if p := snap.Board[y][x]; p != nil {
				copied := *p
				g.board.Set(Coord{X: x, Y: y}, &copied)
			}
		}
	}
	for _, c := range snap.Selected {
		g.selected.Add(c)
	}
	return g, nil
}
