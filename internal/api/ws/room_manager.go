package ws

import "jungle/internal/shared"

type RoomManager interface {
	View(roomCode string) (shared.RoomView, error)
	ApplyMove(roomCode, seatID string, from, to shared.Position) (shared.RoomView, error)
}
