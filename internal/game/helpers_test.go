package game

import (
	"errors"
	"testing"
)

type placement struct {
	row, col, rank, player int
}

func newTestGame(t *testing.T, placements ...placement) *Game {
	t.Helper()
	g := NewGame("A", "B")
	for _, p := range placements {
		if err := g.AddPiece(p.row, p.col, p.rank, p.player); err != nil {
			t.Fatalf("add piece %+v: %v", p, err)
		}
	}
	return g
}

func mustMove(t *testing.T, g *Game, fromRow, fromCol, toRow, toCol int) {
	t.Helper()
	if err := g.Move(fromRow, fromCol, toRow, toCol); err != nil {
		t.Fatalf("move (%d,%d)->(%d,%d): %v", fromRow, fromCol, toRow, toCol, err)
	}
}

func mustPiece(t *testing.T, g *Game, row, col int) *Piece {
	t.Helper()
	p, err := g.GetPiece(row, col)
	if err != nil {
		t.Fatalf("get piece (%d,%d): %v", row, col, err)
	}
	if p == nil {
		t.Fatalf("no piece at (%d,%d)", row, col)
	}
	return p
}

func legal(t *testing.T, g *Game, row, col int) []Coordinate {
	t.Helper()
	moves, err := g.LegalMoves(row, col)
	if err != nil {
		t.Fatalf("legal moves (%d,%d): %v", row, col, err)
	}
	return moves.Sorted()
}

func coords(pairs ...[2]int) []Coordinate {
	out := make([]Coordinate, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Coordinate{Row: p[0], Col: p[1]})
	}
	set := CoordSet{}
	for _, c := range out {
		set.Add(c)
	}
	return set.Sorted()
}

func wantErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}
