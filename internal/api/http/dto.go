package http

// CreateRoomRequest represents the payload for POST /rooms.
type CreateRoomRequest struct {
	Player0 string `json:"player0"`
	Player1 string `json:"player1"`
}

// MoveRequest represents a seat moving one of its pieces.
type MoveRequest struct {
	SeatID  string `json:"seatId" binding:"required"`
	FromRow *int   `json:"fromRow" binding:"required"`
	FromCol *int   `json:"fromCol" binding:"required"`
	ToRow   *int   `json:"toRow" binding:"required"`
	ToCol   *int   `json:"toCol" binding:"required"`
}
