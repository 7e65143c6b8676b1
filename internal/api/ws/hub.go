package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"jungle/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// client serialises writes to one connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

type Hub struct {
	mu          sync.RWMutex
	rooms       map[string]map[*client]struct{}
	roomManager RoomManager
	log         *zap.SugaredLogger
}

func NewHub(roomManager RoomManager, log *zap.SugaredLogger) *Hub {
	return &Hub{
		rooms:       make(map[string]map[*client]struct{}),
		roomManager: roomManager,
		log:         log,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type inbound struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	roomCode := c.Query("room_code")
	if roomCode == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing room_code"})
		return
	}
	view, err := h.roomManager.View(roomCode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnw("failed to upgrade connection", "room", roomCode, "error", err)
		return
	}
	h.log.Infow("websocket connected", "room", roomCode)

	cl := &client{conn: conn}
	// Hold the write lock until the state is sent so broadcasts queue behind it.
	cl.mu.Lock()
	h.mu.Lock()
	if _, ok := h.rooms[roomCode]; !ok {
		h.rooms[roomCode] = make(map[*client]struct{})
	}
	h.rooms[roomCode][cl] = struct{}{}
	h.mu.Unlock()
	_ = conn.WriteJSON(gin.H{"action": "state", "data": gin.H{"room": view}})
	cl.mu.Unlock()

	defer func() {
		h.remove(roomCode, cl)
		_ = conn.Close()
	}()

	for {
		var msg inbound
		if err := conn.ReadJSON(&msg); err != nil {
			h.log.Debugw("websocket closed", "room", roomCode, "error", err)
			return
		}

		switch msg.Action {
		case "move":
			h.handleMove(cl, roomCode, msg.Data)
		default:
			h.log.Warnw("unknown action", "room", roomCode, "action", msg.Action)
			h.reply(cl, "error", gin.H{"error": "unknown action: " + msg.Action})
		}
	}
}

func (h *Hub) handleMove(cl *client, roomCode string, data json.RawMessage) {
	var mv shared.Move
	if err := json.Unmarshal(data, &mv); err != nil {
		h.reply(cl, "error", gin.H{"error": "invalid move data"})
		return
	}
	// The manager broadcasts the applied move to every client in the room.
	if _, err := h.roomManager.ApplyMove(roomCode, mv.SeatID, mv.From, mv.To); err != nil {
		h.reply(cl, "error", gin.H{"error": err.Error()})
	}
}

func (h *Hub) reply(cl *client, action string, data interface{}) {
	if err := cl.send(gin.H{"action": action, "data": data}); err != nil {
		h.log.Warnw("failed to reply", "error", err)
	}
}

func (h *Hub) remove(roomCode string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[roomCode], cl)
	if len(h.rooms[roomCode]) == 0 {
		delete(h.rooms, roomCode)
	}
}

// Broadcast sends to a copy of the room's client set, outside the hub lock.
func (h *Hub) Broadcast(roomCode string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[roomCode]))
	for cl := range h.rooms[roomCode] {
		clients = append(clients, cl)
	}
	h.mu.RUnlock()

	message := map[string]interface{}{
		"action": action,
		"data":   data,
	}
	for _, cl := range clients {
		if err := cl.send(message); err != nil {
			h.log.Warnw("failed to send message", "room", roomCode, "error", err)
			h.remove(roomCode, cl)
			cl.conn.Close()
		}
	}
}

// Clients reports how many connections are subscribed to a room.
func (h *Hub) Clients(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}
