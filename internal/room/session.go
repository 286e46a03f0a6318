package room

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/typefight/typefighter-go/internal/model"
)

// Conn is the transport-level connection a session writes to. Satisfied by
// the websocket wrapper and by test fakes.
type Conn interface {
	WriteMessage(data []byte) error
	Close() error
}

// sendBufferSize bounds the per-session outbound queue. A client that falls
// this far behind is closed: skipping frames mid-stream would silently break
// in-order delivery, while a close forces the client through the normal
// disconnect path.
const sendBufferSize = 64

// Session is one live client connection. Once joined it carries its player
// id as an attachment, set at bind time and read back on every message; the
// room's session map is only a fast-path cache over this binding.
type Session struct {
	conn   Conn
	logger *slog.Logger

	send chan []byte
	done chan struct{}
	once sync.Once

	mu       sync.RWMutex
	playerID model.PlayerID
}

// NewSession wraps a connection and starts its writer
func NewSession(conn Conn, logger *slog.Logger) *Session {
	s := &Session{
		conn:   conn,
		logger: logger,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

// Attach binds the session to a player id
func (s *Session) Attach(playerID model.PlayerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerID = playerID
}

// PlayerID returns the bound player id, or empty before join
func (s *Session) PlayerID() model.PlayerID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerID
}

// Send marshals and enqueues a message for this session
func (s *Session) Send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("failed to marshal message", slog.String("error", err.Error()))
		return
	}
	s.SendBytes(data)
}

// SendBytes enqueues an already-encoded message. Overflow closes the
// session instead of dropping the frame.
func (s *Session) SendBytes(data []byte) {
	select {
	case <-s.done:
	case s.send <- data:
	default:
		s.logger.Warn("session send buffer full, closing slow session",
			slog.String("player_id", string(s.PlayerID())))
		s.Close()
	}
}

// Close shuts down the writer and the underlying connection
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		if err := s.conn.Close(); err != nil {
			s.logger.Debug("error closing connection", slog.String("error", err.Error()))
		}
	})
}

// writeLoop drains the send queue in order, preserving broadcast ordering
// for this session
func (s *Session) writeLoop() {
	for {
		select {
		case <-s.done:
			return
		case data := <-s.send:
			if err := s.conn.WriteMessage(data); err != nil {
				s.logger.Debug("write failed, closing session",
					slog.String("player_id", string(s.PlayerID())),
					slog.String("error", err.Error()),
				)
				s.Close()
				return
			}
		}
	}
}
