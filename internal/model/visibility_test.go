package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoneKingVisibility(t *testing.T) {
	g := gameWith(t, func(b *Board) {
		b.Set(Coord{X: 4, Y: 4}, &Piece{Unit: King, Player: White})
	})
	g.fog = true

	mask := g.Visible()

	var want VisibilityMask
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			want[y][x] = true
		}
	}
	if diff := cmp.Diff(want, mask); diff != "" {
		t.Errorf("visibility mask mismatch (-want +got):\n%s", diff)
	}
}

func TestCornerKingVisibilityBoundedToBoard(t *testing.T) {
	g := gameWith(t, func(b *Board) {
		b.Set(Coord{X: 0, Y: 0}, &Piece{Unit: King, Player: White})
	})

	mask := g.Visible()

	var want VisibilityMask
	want[0][0], want[0][1], want[1][0], want[1][1] = true, true, true, true
	if diff := cmp.Diff(want, mask); diff != "" {
		t.Errorf("visibility mask mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibilityStopsAtFirstOccupiedCell(t *testing.T) {
	g := gameWith(t, func(b *Board) {
		b.Set(Coord{X: 0, Y: 3}, &Piece{Unit: Rook, Player: White})
		b.Set(Coord{X: 4, Y: 3}, &Piece{Unit: Pawn, Player: Black})
	})

	mask := g.Visible()

	if !mask.At(Coord{X: 4, Y: 3}) {
		t.Error("blocking enemy pawn is not revealed")
	}
	if mask.At(Coord{X: 5, Y: 3}) {
		t.Error("cell behind the blocker is visible")
	}
	if !mask.At(Coord{X: 0, Y: 0}) || !mask.At(Coord{X: 0, Y: 7}) {
		t.Error("open file is not fully visible")
	}
}

func TestVisibilityIgnoresOpponentPieces(t *testing.T) {
	g := gameWith(t, func(b *Board) {
		b.Set(Coord{X: 0, Y: 0}, &Piece{Unit: King, Player: White})
		b.Set(Coord{X: 7, Y: 7}, &Piece{Unit: Queen, Player: Black})
	})

	mask := g.Visible()
	if mask.At(Coord{X: 7, Y: 7}) || mask.At(Coord{X: 7, Y: 0}) {
		t.Error("opponent pieces contributed to the current player's visibility")
	}
}

func TestVisibilityMaskAtOutOfRange(t *testing.T) {
	var mask VisibilityMask
	for y := range mask {
		for x := range mask[y] {
			mask[y][x] = true
		}
	}
	for _, c := range []Coord{{X: -1, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 8}} {
		if mask.At(c) {
			t.Errorf("At(%v) = true off the board", c)
		}
	}
}

func TestSnapshotCarriesMaskOnlyWithFog(t *testing.T) {
	fogged, err := NewGame(Config{Fog: true})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if fogged.Snapshot().Visible == nil {
		t.Error("fog-enabled snapshot has no visibility mask")
	}

	unfogged, err := NewGame(Config{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if unfogged.Snapshot().Visible != nil {
		t.Error("fog-disabled snapshot carries a visibility mask")
	}
}
