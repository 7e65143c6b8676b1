package room

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"jungle/internal/config"
	"jungle/internal/game"
	"jungle/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrNotYourTurn   = errors.New("not your turn")
)

type Manager struct {
	store Store
	cfg   config.Config
	hub   Broadcaster
	log   *zap.SugaredLogger
	deal  func(player0, player1 string) (*game.Game, error)

	mu    sync.Mutex
	locks map[string]*roomLock
}

// roomLock is dropped from Manager.locks once no caller holds or awaits it.
type roomLock struct {
	sync.Mutex
	refs int
}

func NewManager(s Store, cfg config.Config, hub Broadcaster, log *zap.SugaredLogger) *Manager {
	return &Manager{
		store: s,
		cfg:   cfg,
		hub:   hub,
		log:   log,
		deal:  dealStartingLayout,
		locks: map[string]*roomLock{},
	}
}

func (m *Manager) SetHub(hub Broadcaster) {
	m.hub = hub
}

// lock acquires the mutex guarding one room code and returns its release.
func (m *Manager) lock(code string) (unlock func()) {
	m.mu.Lock()
	l, ok := m.locks[code]
	if !ok {
		l = &roomLock{}
		m.locks[code] = l
	}
	l.refs++
	m.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		m.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(m.locks, code)
		}
		m.mu.Unlock()
	}
}

func (m *Manager) broadcast(code, action string, data interface{}) {
	if m.hub == nil {
		return
	}
	m.hub.Broadcast(code, action, data)
}

func dealStartingLayout(player0, player1 string) (*game.Game, error) {
	g := game.NewGame(player0, player1)
	if err := g.AddStartingPieces(); err != nil {
		return nil, err
	}
	return g, nil
}

func (m *Manager) CreateRoom(player0, player1 string) (*Room, error) {
	if player0 == "" {
		player0 = "Player 1"
	}
	if player1 == "" {
		player1 = "Player 2"
	}

	g, err := m.deal(player0, player1)
	if err != nil {
		return nil, err
	}

	code := randCode(m.cfg.RoomCodeLength)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = randCode(m.cfg.RoomCodeLength)
	}

	r := &Room{
		ID:   uuid.NewString(),
		Code: code,
		Seats: [game.NumPlayers]shared.Seat{
			{ID: uuid.NewString(), Name: player0, Number: 0},
			{ID: uuid.NewString(), Name: player1, Number: 1},
		},
		Game:      g,
		CreatedAt: time.Now(),
	}
	if err := m.store.SaveRoom(r); err != nil {
		return nil, err
	}
	m.log.Infow("room created", "code", r.Code, "id", r.ID)
	return r, nil
}

func (m *Manager) Get(code string) (*Room, bool) {
	return m.store.GetRoom(code)
}

func (m *Manager) load(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, code)
	}
	return r, nil
}

func (m *Manager) View(code string) (shared.RoomView, error) {
	unlock := m.lock(code)
	defer unlock()

	r, err := m.load(code)
	if err != nil {
		return shared.RoomView{}, err
	}
	return r.View(), nil
}

// LegalMoves lists the destinations of the piece at (row, col) in row-major
// order.
func (m *Manager) LegalMoves(code string, row, col int) ([]shared.Position, error) {
	unlock := m.lock(code)
	defer unlock()

	r, err := m.load(code)
	if err != nil {
		return nil, err
	}
	moves, err := r.Game.LegalMoves(row, col)
	if err != nil {
		return nil, err
	}
	out := []shared.Position{}
	for _, c := range moves.Sorted() {
		out = append(out, shared.Position{Row: c.Row, Col: c.Col})
	}
	return out, nil
}

// ApplyMove moves a piece on behalf of a seat. Unlike the engine, it tells
// an out-of-turn seat apart from an illegal destination.
func (m *Manager) ApplyMove(code, seatID string, from, to shared.Position) (shared.RoomView, error) {
	unlock := m.lock(code)
	defer unlock()

	r, err := m.load(code)
	if err != nil {
		return shared.RoomView{}, err
	}
	seat, ok := r.seat(seatID)
	if !ok {
		return shared.RoomView{}, fmt.Errorf("%w: %s", ErrUnknownPlayer, seatID)
	}
	if !r.Game.IsGameOver() && seat.Number != r.Game.Turn() {
		return shared.RoomView{}, ErrNotYourTurn
	}

	if err := r.Game.Move(from.Row, from.Col, to.Row, to.Col); err != nil {
		m.log.Debugw("move rejected", "code", code, "seat", seat.Number, "from", from, "to", to, "error", err)
		return shared.RoomView{}, err
	}
	if err := m.store.SaveRoom(r); err != nil {
		m.log.Errorw("save room failed", "code", code, "error", err)
		return shared.RoomView{}, err
	}

	view := r.View()
	m.broadcast(code, "move-applied", gin.H{
		"move": shared.Move{SeatID: seatID, From: from, To: to},
		"room": view,
	})
	if view.GameOver {
		m.log.Infow("game over", "code", code, "winner", view.Winner)
		m.broadcast(code, "game-over", gin.H{
			"winner": view.Winner,
			"room":   view,
		})
	}
	return view, nil
}

// Restart deals a fresh game to the same seats.
func (m *Manager) Restart(code string) (shared.RoomView, error) {
	unlock := m.lock(code)
	defer unlock()

	r, err := m.load(code)
	if err != nil {
		return shared.RoomView{}, err
	}
	g, err := m.deal(r.Seats[0].Name, r.Seats[1].Name)
	if err != nil {
		return shared.RoomView{}, err
	}
	r.Game = g
	if err := m.store.SaveRoom(r); err != nil {
		return shared.RoomView{}, err
	}

	view := r.View()
	m.broadcast(code, "state-updated", gin.H{"room": view})
	return view, nil
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randCode(n int) string {
	if n <= 0 {
		n = 6
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
