package game

import "fmt"

// Snapshot is a serialisable copy of a game's full state.
type Snapshot struct {
	Players   [NumPlayers]Player `json:"players"`
	Pieces    []PieceSnapshot    `json:"pieces"`
	LastMoved int                `json:"lastMoved"`
	GameOver  bool               `json:"gameOver"`
	Winner    *int               `json:"winner,omitempty"`
}

type PieceSnapshot struct {
	Row      int `json:"row"`
	Col      int `json:"col"`
	Rank     int `json:"rank"`
	Player   int `json:"player"`
	Strength int `json:"strength"`
}

func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		LastMoved: g.lastMoved,
		GameOver:  g.gameOver,
	}
	for i, p := range g.players {
		s.Players[i] = *p
	}
	if g.winner != nil {
		w := g.winner.Number
		s.Winner = &w
	}
	for _, pp := range g.Pieces() {
		s.Pieces = append(s.Pieces, PieceSnapshot{
			Row:      pp.At.Row,
			Col:      pp.At.Col,
			Rank:     pp.Piece.Rank,
			Player:   pp.Piece.Owner,
			Strength: pp.Piece.Strength,
		})
	}
	return s
}

// Restore rebuilds a game from a snapshot without re-running victory checks.
func Restore(s Snapshot) (*Game, error) {
	g := NewGame(s.Players[0].Name, s.Players[1].Name)
	if err := validPlayer(s.LastMoved); err != nil {
		return nil, fmt.Errorf("%w: last moved: %v", ErrInvalidSnapshot, err)
	}

	for _, ps := range s.Pieces {
		if err := validPlayer(ps.Player); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		at := Coordinate{Row: ps.Row, Col: ps.Col}
		sq, err := g.board.Get(at)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		if existing := g.pieces.cells[at.Row][at.Col]; existing != nil {
			return nil, fmt.Errorf("%w: two pieces at %s", ErrInvalidSnapshot, at)
		}
		p, err := newPiece(ps.Player, sq, ps.Rank)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
		}
		// Strength follows from the square: 0 on an enemy trap, rank elsewhere.
		if ps.Strength != p.Strength {
			return nil, fmt.Errorf("%w: strength %d for rank %d at %s", ErrInvalidSnapshot, ps.Strength, ps.Rank, at)
		}
		g.pieces.cells[at.Row][at.Col] = p
	}

	for i := range g.players {
		sp := s.Players[i]
		if sp.PieceCount < 0 {
			return nil, fmt.Errorf("%w: negative piece count for player %d", ErrInvalidSnapshot, i)
		}
		g.players[i].PieceCount = sp.PieceCount
		g.players[i].DenCaptured = sp.DenCaptured
	}

	g.lastMoved = s.LastMoved
	g.gameOver = s.GameOver
	if s.Winner != nil {
		if !s.GameOver {
			return nil, fmt.Errorf("%w: winner set on a game in progress", ErrInvalidSnapshot)
		}
		if err := validPlayer(*s.Winner); err != nil {
			return nil, fmt.Errorf("%w: winner: %v", ErrInvalidSnapshot, err)
		}
		g.winner = g.players[*s.Winner]
	}
	return g, nil
}
