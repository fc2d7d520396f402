package model

// Ray visits the cells at offsets 1..7 from origin along the fixed direction
// (dx, dy), in order, until a cell holding any piece has been visited. The
// occupied cell itself is visited: it is a capture target for move
// generation and a block-reveal for visibility. Visiting stops early when
// visit returns false.
//
// Coordinates are not bounds-filtered here. Get treats off-board cells as
// empty, so a ray keeps yielding off-board coordinates until its offsets run
// out; consumers that need on-board cells re-check with InRange or Get.
func (b *Board) Ray(origin Coord, dx, dy int, visit func(Coord) bool) {
	for i := 1; i < 8; i++ {
		c := Coord{X: origin.X + dx*i, Y: origin.Y + dy*i}
		if !visit(c) {
			return
		}
		if b.Get(c) != nil {
			return
		}
	}
}

var (
	orthogonal = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonal   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	adjacent   = [8][2]int{
		{1, 1}, {-1, -1}, {1, -1}, {-1, 1},
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	knightJumps = [8][2]int{
		{2, -1}, {2, 1}, {-2, -1}, {-2, 1},
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
	}
)
