package game

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	g := NewGame("A", "B")
	if err := g.AddStartingPieces(); err != nil {
		t.Fatal(err)
	}
	mustMove(t, g, 2, 0, 3, 0)
	mustMove(t, g, 6, 0, 5, 0)
	mustMove(t, g, 3, 0, 3, 1) // rat into the water

	raw, err := json.Marshal(g.Snapshot())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Snapshot
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	restored, err := Restore(decoded)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if diff := cmp.Diff(g.Snapshot(), restored.Snapshot()); diff != "" {
		t.Fatalf("restored game differs (-orig +restored):\n%s", diff)
	}
	if diff := cmp.Diff(legal(t, g, 5, 0), legal(t, restored, 5, 0)); diff != "" {
		t.Fatalf("restored legal moves differ:\n%s", diff)
	}
}

func TestSnapshotKeepsTrapAndWinner(t *testing.T) {
	g := newTestGame(t,
		placement{8, 2, 4, 0},
		placement{7, 3, 5, 0}, // starts trapped
		placement{0, 6, 3, 1},
	)
	mustMove(t, g, 8, 2, 8, 3)

	restored, err := Restore(g.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	if !restored.IsGameOver() || restored.Winner() == nil || restored.Winner().Number != 0 {
		t.Fatalf("winner lost in restore")
	}
	if p := mustPiece(t, restored, 7, 3); !p.IsTrapped() {
		t.Fatalf("trap state lost in restore")
	}
}

func TestRestoreRejectsBadSnapshots(t *testing.T) {
	zero, two := 0, 2
	tests := []struct {
		name string
		snap Snapshot
	}{
		{"bad rank", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 0, Col: 0, Rank: 9, Player: 0, Strength: 9}}}},
		{"bad player", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 0, Col: 0, Rank: 3, Player: 4, Strength: 3}}}},
		{"out of bounds", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 9, Col: 0, Rank: 3, Player: 0, Strength: 3}}}},
		{"stacked pieces", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{
			{Row: 0, Col: 0, Rank: 3, Player: 0, Strength: 3},
			{Row: 0, Col: 0, Rank: 4, Player: 1, Strength: 4},
		}}},
		{"odd strength", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 0, Col: 0, Rank: 3, Player: 0, Strength: 2}}}},
		{"bad last moved", Snapshot{LastMoved: 5}},
		{"bad winner", Snapshot{LastMoved: 1, GameOver: true, Winner: &two}},
		{"winner while in progress", Snapshot{LastMoved: 1, Winner: &zero}},
		{"full strength on enemy trap", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 7, Col: 3, Rank: 7, Player: 0, Strength: 7}}}},
		{"trapped off a trap", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 4, Col: 3, Rank: 7, Player: 0, Strength: 0}}}},
		{"trapped on own trap", Snapshot{LastMoved: 1, Pieces: []PieceSnapshot{{Row: 1, Col: 3, Rank: 4, Player: 0, Strength: 0}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.snap)
			wantErr(t, err, ErrInvalidSnapshot)
		})
	}
}
