package model

// Coord addresses a board cell by column (X) and row (Y).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// InRange reports whether the coordinate lies on the board. This is the one
// range predicate used everywhere a coordinate is validated.
func (c Coord) InRange() bool {
	return c.X >= 0 && c.X <= 7 && c.Y >= 0 && c.Y <= 7
}

// Board holds at most one piece per cell of the 8x8 grid. Cells are stored
// in a flat arena indexed row-major; the board exclusively owns every piece
// it contains.
type Board struct {
	cells [64]*Piece
}

func index(c Coord) int { return c.Y*8 + c.X }

// Get returns the piece at c, or nil if the cell is empty or c is off the
// board.
func (b *Board) Get(c Coord) *Piece {
	if !c.InRange() {
		return nil
	}
	return b.cells[index(c)]
}

// Set overwrites the cell at c unconditionally. Out-of-range coordinates are
// silently ignored. Callers own relocation semantics; Set does not look at
// the existing occupant.
func (b *Board) Set(c Coord, p *Piece) {
	if !c.InRange() {
		return
	}
	b.cells[index(c)] = p
}

// MovePiece relocates the piece at from to to, incrementing its Moved
// counter and discarding whatever occupied the destination. It is a no-op if
// either coordinate is off the board or the source cell is empty.
func (b *Board) MovePiece(from, to Coord) {
	if !from.InRange() || !to.InRange() {
		return
	}
	p := b.cells[index(from)]
	if p == nil {
		return
	}
	b.cells[index(from)] = nil
	p.Moved++
	b.cells[index(to)] = p
}

// Squares visits every cell exactly once in row-major order (row 0 first,
// column 0 first within a row). Iteration stops early when visit returns
// false.
func (b *Board) Squares(visit func(x, y int, p *Piece) bool) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if !visit(x, y, b.cells[y*8+x]) {
				return
			}
		}
	}
}

// StandardBoard returns the conventional 32-piece starting layout with White
// on rows 0 and 1.
func StandardBoard() *Board {
	b := &Board{}
	back := []Unit{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, u := range back {
		b.Set(Coord{X: x, Y: 0}, &Piece{Unit: u, Player: White})
		b.Set(Coord{X: x, Y: 7}, &Piece{Unit: u, Player: Black})
	}
	for x := 0; x < 8; x++ {
		b.Set(Coord{X: x, Y: 1}, &Piece{Unit: Pawn, Player: White})
		b.Set(Coord{X: x, Y: 6}, &Piece{Unit: Pawn, Player: Black})
	}
	return b
}
