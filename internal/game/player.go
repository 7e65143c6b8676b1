package game

type Player struct {
	Name        string `json:"name"`
	Number      int    `json:"number"`
	PieceCount  int    `json:"pieceCount"`
	DenCaptured bool   `json:"denCaptured"`
}

func (p *Player) HasPieces() bool { return p.PieceCount > 0 }

func (p *Player) gainPiece() { p.PieceCount++ }
func (p *Player) losePiece() { p.PieceCount-- }

// captureDen is permanent; nothing ever clears it.
func (p *Player) captureDen() { p.DenCaptured = true }
