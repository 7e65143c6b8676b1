package ws

import (
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"jungle/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type stubManager struct {
	mu    sync.Mutex
	hub   *Hub
	moves []shared.Move
}

func (s *stubManager) View(code string) (shared.RoomView, error) {
	if code != "ROOM01" {
		return shared.RoomView{}, errors.New("room not found")
	}
	return shared.RoomView{Code: code}, nil
}

func (s *stubManager) ApplyMove(code, seatID string, from, to shared.Position) (shared.RoomView, error) {
	if seatID != "seat-0" {
		return shared.RoomView{}, errors.New("unknown player")
	}
	s.mu.Lock()
	s.moves = append(s.moves, shared.Move{SeatID: seatID, From: from, To: to})
	s.mu.Unlock()
	view := shared.RoomView{Code: code, Turn: 1}
	s.hub.Broadcast(code, "move-applied", gin.H{"room": view})
	return view, nil
}

type envelope struct {
	Action string                 `json:"action"`
	Data   map[string]interface{} `json:"data"`
}

func startHub(t *testing.T) (*Hub, *stubManager, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sm := &stubManager{}
	hub := NewHub(sm, zap.NewNop().Sugar())
	sm.hub = hub

	r := gin.New()
	r.GET("/ws", hub.HandleWS)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, sm, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn) envelope {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg envelope
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func waitClients(t *testing.T, hub *Hub, code string, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Clients(code) != n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d clients, have %d", n, hub.Clients(code))
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHandshakeRejectsUnknownRoom(t *testing.T) {
	_, _, url := startHub(t)
	if _, resp, err := websocket.DefaultDialer.Dial(url+"?room_code=NOPE", nil); err == nil {
		t.Fatal("expected handshake failure")
	} else if resp == nil || resp.StatusCode != 404 {
		t.Fatalf("expected 404, got %v", resp)
	}
	if _, resp, err := websocket.DefaultDialer.Dial(url, nil); err == nil || resp == nil || resp.StatusCode != 400 {
		t.Fatalf("expected 400 without room_code, got %v", err)
	}
}

func TestBroadcastReachesRoomClients(t *testing.T) {
	hub, _, url := startHub(t)
	a := dial(t, url+"?room_code=ROOM01")
	b := dial(t, url+"?room_code=ROOM01")

	if msg := read(t, a); msg.Action != "state" {
		t.Fatalf("first message = %q", msg.Action)
	}
	if msg := read(t, b); msg.Action != "state" {
		t.Fatalf("first message = %q", msg.Action)
	}
	waitClients(t, hub, "ROOM01", 2)

	hub.Broadcast("ROOM01", "state-updated", gin.H{"n": 1})
	hub.Broadcast("OTHER", "state-updated", gin.H{"n": 2})

	for _, c := range []*websocket.Conn{a, b} {
		msg := read(t, c)
		if msg.Action != "state-updated" || msg.Data["n"] != float64(1) {
			t.Fatalf("unexpected message %+v", msg)
		}
	}
}

func TestInboundMove(t *testing.T) {
	hub, sm, url := startHub(t)
	conn := dial(t, url+"?room_code=ROOM01")
	read(t, conn)
	waitClients(t, hub, "ROOM01", 1)

	move := gin.H{
		"action": "move",
		"data": shared.Move{
			SeatID: "seat-0",
			From:   shared.Position{Row: 2, Col: 0},
			To:     shared.Position{Row: 3, Col: 0},
		},
	}
	if err := conn.WriteJSON(move); err != nil {
		t.Fatal(err)
	}
	if msg := read(t, conn); msg.Action != "move-applied" {
		t.Fatalf("expected move-applied, got %+v", msg)
	}
	sm.mu.Lock()
	if len(sm.moves) != 1 || sm.moves[0].To != (shared.Position{Row: 3, Col: 0}) {
		t.Fatalf("moves = %+v", sm.moves)
	}
	sm.mu.Unlock()

	move["data"] = shared.Move{SeatID: "intruder"}
	if err := conn.WriteJSON(move); err != nil {
		t.Fatal(err)
	}
	if msg := read(t, conn); msg.Action != "error" || msg.Data["error"] != "unknown player" {
		t.Fatalf("expected error reply, got %+v", msg)
	}

	if err := conn.WriteJSON(gin.H{"action": "dance"}); err != nil {
		t.Fatal(err)
	}
	if msg := read(t, conn); msg.Action != "error" {
		t.Fatalf("expected error for unknown action, got %+v", msg)
	}
}

func TestDisconnectUnsubscribes(t *testing.T) {
	hub, _, url := startHub(t)
	conn := dial(t, url+"?room_code=ROOM01")
	read(t, conn)
	waitClients(t, hub, "ROOM01", 1)

	conn.Close()
	waitClients(t, hub, "ROOM01", 0)
}

func TestNilHubBroadcast(t *testing.T) {
	var hub *Hub
	hub.Broadcast("ROOM01", "noop", nil)
}

func TestStalledClientDoesNotBlockOtherRooms(t *testing.T) {
	hub, _, url := startHub(t)

	slow := dial(t, url+"?room_code=ROOM01")
	read(t, slow)
	waitClients(t, hub, "ROOM01", 1)

	// Park the first client in a room of its own.
	hub.mu.Lock()
	var stalled *client
	for cl := range hub.rooms["ROOM01"] {
		stalled = cl
	}
	delete(hub.rooms, "ROOM01")
	hub.rooms["SLOW"] = map[*client]struct{}{stalled: {}}
	hub.mu.Unlock()

	fast := dial(t, url+"?room_code=ROOM01")
	read(t, fast)
	waitClients(t, hub, "ROOM01", 1)

	stalled.mu.Lock()
	slowDone := make(chan struct{})
	go func() {
		hub.Broadcast("SLOW", "state-updated", gin.H{"n": 0})
		close(slowDone)
	}()

	done := make(chan struct{})
	go func() {
		hub.Broadcast("ROOM01", "state-updated", gin.H{"n": 1})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		stalled.mu.Unlock()
		t.Fatal("broadcast blocked by a stalled client in another room")
	}
	if msg := read(t, fast); msg.Data["n"] != float64(1) {
		t.Fatalf("unexpected message %+v", msg)
	}
	if hub.Clients("SLOW") != 1 {
		t.Fatalf("hub lock must stay available while a write is pending")
	}

	stalled.mu.Unlock()
	<-slowDone
	if msg := read(t, slow); msg.Data["n"] != float64(0) {
		t.Fatalf("stalled client should get its message once released, got %+v", msg)
	}
}
