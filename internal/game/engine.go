package game

import "fmt"

// NewGame builds an empty board for two named players. Player 0 moves first.
func NewGame(player0, player1 string) *Game {
	return &Game{
		players: [NumPlayers]*Player{
			{Name: player0, Number: 0},
			{Name: player1, Number: 1},
		},
		board:     NewTerrainBoard(),
		pieces:    NewGrid[*Piece](Height, Width),
		lastMoved: 1,
	}
}

func validPlayer(n int) error {
	if n < 0 || n >= NumPlayers {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, n)
	}
	return nil
}

// AddPiece places a new piece during setup, overwriting the target cell.
func (g *Game) AddPiece(row, col, rank, playerNumber int) error {
	if err := validPlayer(playerNumber); err != nil {
		return err
	}
	at := Coordinate{Row: row, Col: col}
	sq, err := g.board.Get(at)
	if err != nil {
		return err
	}
	p, err := newPiece(playerNumber, sq, rank)
	if err != nil {
		return err
	}
	if err := g.pieces.Set(at, p); err != nil {
		return err
	}
	g.players[playerNumber].gainPiece()

	g.checkVictory()
	return nil
}

// AddStartingPieces places the standard sixteen-piece opening.
func (g *Game) AddStartingPieces() error {
	for _, sp := range startingLayout {
		if err := g.AddPiece(sp.row, sp.col, sp.rank, sp.player); err != nil {
			return err
		}
	}
	return nil
}

// GetPiece returns the piece at (row, col), or nil for an empty cell.
func (g *Game) GetPiece(row, col int) (*Piece, error) {
	return g.pieces.Get(Coordinate{Row: row, Col: col})
}

func (g *Game) GetSquare(row, col int) (Square, error) {
	return g.board.Get(Coordinate{Row: row, Col: col})
}

func (g *Game) GetPlayer(playerNumber int) (*Player, error) {
	if err := validPlayer(playerNumber); err != nil {
		return nil, err
	}
	return g.players[playerNumber], nil
}

// Pieces lists every occupied cell in row-major order.
func (g *Game) Pieces() []PlacedPiece {
	var out []PlacedPiece
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if p := g.pieces.cells[r][c]; p != nil {
				out = append(out, PlacedPiece{At: Coordinate{Row: r, Col: c}, Piece: p})
			}
		}
	}
	return out
}

// LastMoved is the number of the player who completed the latest move.
func (g *Game) LastMoved() int { return g.lastMoved }

// Turn is the number of the player expected to move next.
func (g *Game) Turn() int { return NumPlayers - 1 - g.lastMoved }

func (g *Game) IsGameOver() bool { return g.gameOver }

// Winner returns nil while no player has won.
func (g *Game) Winner() *Player { return g.winner }

// Move executes a move after re-deriving the legal destinations. On error
// nothing has been mutated.
func (g *Game) Move(fromRow, fromCol, toRow, toCol int) error {
	from := Coordinate{Row: fromRow, Col: fromCol}
	to := Coordinate{Row: toRow, Col: toCol}

	legal, err := g.LegalMoves(fromRow, fromCol)
	if err != nil {
		return err
	}
	if !legal.Has(to) {
		return fmt.Errorf("%w: %s to %s", ErrIllegalMove, from, to)
	}

	mover := g.pieces.cells[from.Row][from.Col]
	if target := g.pieces.cells[to.Row][to.Col]; target != nil {
		target.BeCaptured()
		g.players[target.Owner].losePiece()
	}

	g.pieces.cells[from.Row][from.Col] = nil
	g.pieces.cells[to.Row][to.Col] = mover

	if mover.Move(g.board.cells[to.Row][to.Col]) {
		g.players[mover.Owner].captureDen()
	}

	g.lastMoved = mover.Owner
	g.checkVictory()
	return nil
}
