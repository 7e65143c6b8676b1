package room

// Broadcaster fans room events out to connected clients.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data interface{})
}
