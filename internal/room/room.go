package room

import (
	"fmt"
	"time"

	"jungle/internal/game"
	"jungle/internal/shared"
)

// Room is one game between two seats. Access goes through Manager, which
// serialises operations per room code.
type Room struct {
	ID        string
	Code      string
	Seats     [game.NumPlayers]shared.Seat
	Game      *game.Game
	CreatedAt time.Time
}

type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room) error
}

// Record is the persisted form of a room.
type Record struct {
	ID        string                       `json:"id"`
	Code      string                       `json:"code"`
	Seats     [game.NumPlayers]shared.Seat `json:"seats"`
	CreatedAt time.Time                    `json:"createdAt"`
	Game      game.Snapshot                `json:"game"`
}

func (r *Room) Record() Record {
	return Record{
		ID:        r.ID,
		Code:      r.Code,
		Seats:     r.Seats,
		CreatedAt: r.CreatedAt,
		Game:      r.Game.Snapshot(),
	}
}

func FromRecord(rec Record) (*Room, error) {
	g, err := game.Restore(rec.Game)
	if err != nil {
		return nil, fmt.Errorf("restore room %s: %w", rec.Code, err)
	}
	return &Room{
		ID:        rec.ID,
		Code:      rec.Code,
		Seats:     rec.Seats,
		Game:      g,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (r *Room) seat(id string) (shared.Seat, bool) {
	for _, s := range r.Seats {
		if s.ID == id {
			return s, true
		}
	}
	return shared.Seat{}, false
}

func (r *Room) View() shared.RoomView {
	g := r.Game
	v := shared.RoomView{
		ID:        r.ID,
		Code:      r.Code,
		Seats:     r.Seats[:],
		Turn:      g.Turn(),
		GameOver:  g.IsGameOver(),
		CreatedAt: r.CreatedAt,
	}
	if w := g.Winner(); w != nil {
		n := w.Number
		v.Winner = &n
	}

	for n := 0; n < game.NumPlayers; n++ {
		p, _ := g.GetPlayer(n)
		v.Players = append(v.Players, shared.PlayerView{
			Name:        p.Name,
			Number:      p.Number,
			PieceCount:  p.PieceCount,
			DenCaptured: p.DenCaptured,
		})
	}

	v.Board = make([][]shared.Cell, game.Height)
	for row := 0; row < game.Height; row++ {
		v.Board[row] = make([]shared.Cell, game.Width)
		for col := 0; col < game.Width; col++ {
			sq, _ := g.GetSquare(row, col)
			cell := shared.Cell{Row: row, Col: col, Terrain: sq.Kind.String(), Owner: sq.Owner}
			if pc, _ := g.GetPiece(row, col); pc != nil {
				cell.Piece = &shared.PieceView{
					Kind:     pc.Kind.String(),
					Rank:     pc.Rank,
					Strength: pc.Strength,
					Player:   pc.Owner,
				}
			}
			v.Board[row][col] = cell
		}
	}
	return v
}
