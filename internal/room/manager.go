package room

import (
	"log/slog"
	"sync"

	"github.com/typefight/typefighter-go/internal/dependencies/clock"
	"github.com/typefight/typefighter-go/internal/dependencies/random"
	"github.com/typefight/typefighter-go/internal/model"
)

// Dependencies bundles everything a room needs beyond its code
type Dependencies struct {
	Clock   clock.Clock
	Random  random.Random
	Prompts PromptSource
	Auth    ClaimVerifier
	Results ResultSink
}

// Manager owns the live rooms, one actor per room code. Rooms are created
// on first use and persist until shutdown; an emptied room resets itself
// in place rather than being torn down.
type Manager struct {
	deps   Dependencies
	logger *slog.Logger

	mu    sync.RWMutex
	rooms map[model.RoomCode]*Room
}

// NewManager creates a room manager
func NewManager(deps Dependencies, logger *slog.Logger) *Manager {
	return &Manager{
		deps:   deps,
		logger: logger,
		rooms:  make(map[model.RoomCode]*Room),
	}
}

// GetOrCreate returns the room for a code, spawning its actor on first use
func (m *Manager) GetOrCreate(code model.RoomCode) (*Room, error) {
	code = model.NormalizeRoomCode(string(code))
	if !model.ValidRoomCode(code) {
		return nil, model.ErrInvalidRoomCode
	}

	m.mu.RLock()
	r, ok := m.rooms[code]
	m.mu.RUnlock()
	if ok {
		return r, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[code]; ok {
		return r, nil
	}

	r = newRoom(code, m.deps, m.logger)
	m.rooms[code] = r
	go r.run()

	m.logger.Info("room created", slog.String("room", string(code)))
	return r, nil
}

// Get returns the room for a code if it exists
func (m *Manager) Get(code model.RoomCode) (*Room, bool) {
	code = model.NormalizeRoomCode(string(code))
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[code]
	return r, ok
}

// RoomCount reports how many rooms are live
func (m *Manager) RoomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rooms)
}

// CloseAll stops every room's run loop. For shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rooms {
		r.close()
	}
	m.rooms = make(map[model.RoomCode]*Room)
}
