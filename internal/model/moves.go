package model

// Moves calculates the legal target cells for the piece at pos. An empty
// cell yields no moves. Candidates occupied by an ally are filtered out
// uniformly at the end; occupation by the opponent denotes a capture.
//
// Knight, king, and pawn candidates are not bounds-checked here: the ally
// filter treats off-board cells as "not ally", so off-board candidates
// survive the generator. They are harmless because every consumer that acts
// on a candidate also tests board containment (Get returns nil off the
// board, and clicks arrive pre-resolved to grid space).
func (g *Game) Moves(pos Coord) []Coord {
	p := g.board.Get(pos)
	if p == nil {
		return nil
	}
	var candidates []Coord
	switch p.Unit {
	case Pawn:
		candidates = g.pawnMoves(pos, p)
	case Knight:
		for _, d := range knightJumps {
			candidates = append(candidates, Coord{X: pos.X + d[0], Y: pos.Y + d[1]})
		}
	case Rook:
		candidates = g.rayMoves(pos, orthogonal[:])
	case Bishop:
		candidates = g.rayMoves(pos, diagonal[:])
	case Queen:
		candidates = g.rayMoves(pos, orthogonal[:])
		candidates = append(candidates, g.rayMoves(pos, diagonal[:])...)
	case King:
		for _, d := range adjacent {
			candidates = append(candidates, Coord{X: pos.X + d[0], Y: pos.Y + d[1]})
		}
	}
	moves := candidates[:0]
	for _, c := range candidates {
		if !g.containsAlly(c) {
			moves = append(moves, c)
		}
	}
	return moves
}

// pawnMoves yields the pawn candidates: the two forward diagonals only when
// an enemy stands there, the single forward step only when empty, and the
// double step only while the pawn has never moved and both forward cells are
// empty. Direction is +1 row for White and -1 for Black.
func (g *Game) pawnMoves(pos Coord, p *Piece) []Coord {
	dy := 1
	if p.Player == Black {
		dy = -1
	}
	var moves []Coord
	for _, dx := range []int{-1, 1} {
		diag := Coord{X: pos.X + dx, Y: pos.Y + dy}
		if g.containsEnemy(diag) {
			moves = append(moves, diag)
		}
	}
	single := Coord{X: pos.X, Y: pos.Y + dy}
	double := Coord{X: pos.X, Y: pos.Y + 2*dy}
	if g.board.Get(single) == nil {
		moves = append(moves, single)
		if p.Moved == 0 && g.board.Get(double) == nil {
			moves = append(moves, double)
		}
	}
	return moves
}

func (g *Game) rayMoves(pos Coord, dirs [][2]int) []Coord {
	var moves []Coord
	for _, d := range dirs {
		g.board.Ray(pos, d[0], d[1], func(c Coord) bool {
			moves = append(moves, c)
			return true
		})
	}
	return moves
}

// LineOfSight is the set of cells the piece at pos sees: its legal moves
// plus the eight adjacent cells regardless of occupancy. This deliberately
// over-approximates attack targets, because a piece sees cells it cannot
// currently move to (a pawn watches its diagonals even when no enemy stands
// there). The result may contain duplicates and off-board coordinates;
// consumers union it into a mask.
func (g *Game) LineOfSight(pos Coord) []Coord {
	sight := g.Moves(pos)
	for _, d := range adjacent {
		sight = append(sight, Coord{X: pos.X + d[0], Y: pos.Y + d[1]})
	}
	return sight
}
