package model

// VisibilityMask marks which cells the player to move can see, indexed
// [y][x]. Unmarked cells are fogged.
type VisibilityMask [8][8]bool

// At reports whether c is visible. Off-board coordinates are never visible.
func (m *VisibilityMask) At(c Coord) bool {
	if !c.InRange() {
		return false
	}
	return m[c.Y][c.X]
}

func (m *VisibilityMask) mark(c Coord) {
	if c.InRange() {
		m[c.Y][c.X] = true
	}
}

// Visible unions the line of sight of every piece owned by the player to
// move, plus each such piece's own cell, discarding off-board hits. The mask
// is recomputed from scratch on every call; nothing is cached.
func (g *Game) Visible() VisibilityMask {
	var mask VisibilityMask
	g.board.Squares(func(x, y int, p *Piece) bool {
		if p == nil || p.Player != g.turn {
			return true
		}
		origin := Coord{X: x, Y: y}
		mask.mark(origin)
		for _, c := range g.LineOfSight(origin) {
			mask.mark(c)
		}
		return true
	})
	return mask
}
