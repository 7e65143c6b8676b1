package shared

import "time"

type Cell struct {
	Row     int        `json:"row"`
	Col     int        `json:"col"`
	Terrain string     `json:"terrain"`
	Owner   int        `json:"owner"`
	Piece   *PieceView `json:"piece,omitempty"`
}

type PieceView struct {
	Kind     string `json:"kind"`
	Rank     int    `json:"rank"`
	Strength int    `json:"strength"`
	Player   int    `json:"player"`
}

type Seat struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type PlayerView struct {
	Name        string `json:"name"`
	Number      int    `json:"number"`
	PieceCount  int    `json:"pieceCount"`
	DenCaptured bool   `json:"denCaptured"`
}

type RoomView struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Seats     []Seat       `json:"seats"`
	Players   []PlayerView `json:"players"`
	Board     [][]Cell     `json:"board"`
	Turn      int          `json:"turn"`
	GameOver  bool         `json:"gameOver"`
	Winner    *int         `json:"winner"`
	CreatedAt time.Time    `json:"createdAt"`
}

type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Move struct {
	SeatID string   `json:"seatId"`
	From   Position `json:"from"`
	To     Position `json:"to"`
}
