package room

import (
	"context"
	"encoding/json"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/typefight/typefighter-go/internal/dependencies/clock"
	"github.com/typefight/typefighter-go/internal/dependencies/random"
	"github.com/typefight/typefighter-go/internal/model"
)

// PromptSource provides typing prompts for a difficulty tier
type PromptSource interface {
	RandomPrompt(ctx context.Context, difficulty model.Difficulty) (*model.Word, error)
}

// ClaimVerifier checks that an access token belongs to the claimed user
type ClaimVerifier interface {
	VerifyClaim(ctx context.Context, claimedUserID, accessToken string) (string, error)
}

// ResultSink persists match outcomes and streaks
type ResultSink interface {
	RecordMatch(ctx context.Context, match *model.MatchRecord) error
	ResetStreak(ctx context.Context, userID string) error
}

// Timing for the server-driven presentation sequences
const (
	roundIntroDwell   = 1500 * time.Millisecond
	countdownTick     = time.Second
	countdownFrom     = 3
	gameStartSettle   = time.Second
	knockoutDwell     = 2 * time.Second
	heartbeatInterval = 30 * time.Second
)

const (
	mailboxSize        = 256
	promptFetchTimeout = 3 * time.Second
	verifyTimeout      = 10 * time.Second
	persistTimeout     = 10 * time.Second
)

// Room is the coordination actor for one match room. All state below the
// mailbox is owned by the run loop and touched only from there; sessions,
// timers, and verification callbacks communicate by posting closures.
type Room struct {
	code    model.RoomCode
	logger  *slog.Logger
	clock   clock.Clock
	random  random.Random
	prompts PromptSource
	auth    ClaimVerifier
	results ResultSink

	mailbox chan func()
	quit    chan struct{}

	// Run-loop-owned state
	status   model.RoomStatus
	round    int
	winner   model.PlayerID
	players  map[model.PlayerID]*model.Player
	order    []model.PlayerID
	sessions map[model.PlayerID]*Session
	authCtx  map[model.PlayerID]*model.AuthContext

	// generation invalidates scheduled lifecycle steps across room resets
	generation  int
	heartbeatOn bool
}

func newRoom(code model.RoomCode, deps Dependencies, logger *slog.Logger) *Room {
	return &Room{
		code:     code,
		logger:   logger.With(slog.String("room", string(code))),
		clock:    deps.Clock,
		random:   deps.Random,
		prompts:  deps.Prompts,
		auth:     deps.Auth,
		results:  deps.Results,
		mailbox:  make(chan func(), mailboxSize),
		quit:     make(chan struct{}),
		status:   model.RoomStatusWaiting,
		round:    1,
		players:  make(map[model.PlayerID]*model.Player),
		sessions: make(map[model.PlayerID]*Session),
		authCtx:  make(map[model.PlayerID]*model.AuthContext),
	}
}

// Code returns the room's code
func (r *Room) Code() model.RoomCode {
	return r.code
}

// Deliver hands a raw inbound frame from a session to the actor
func (r *Room) Deliver(sess *Session, raw []byte) {
	r.post(func() { r.dispatch(sess, raw) })
}

// Disconnect reports a closed connection to the actor
func (r *Room) Disconnect(sess *Session) {
	r.post(func() { r.handleDisconnect(sess) })
}

// run drains the mailbox, processing one message to completion at a time
func (r *Room) run() {
	for {
		select {
		case <-r.quit:
			return
		case fn := <-r.mailbox:
			fn()
		}
	}
}

// close stops the run loop. Rooms normally live for the process lifetime;
// this exists for shutdown and tests.
func (r *Room) close() {
	close(r.quit)
}

func (r *Room) post(fn func()) {
	select {
	case r.mailbox <- fn:
	case <-r.quit:
	}
}

// dispatch is the message boundary: it parses, routes, and contains any
// panic so one bad message can't take the room down
func (r *Room) dispatch(sess *Session, raw []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("panic handling message",
				slog.Any("error", rec),
				slog.String("stack", string(debug.Stack())),
			)
			r.sendError(sess, "Internal server error")
		}
	}()

	msg, err := model.ParseClientMessage(raw)
	if err != nil {
		r.sendError(sess, "Invalid message format")
		return
	}

	switch msg.Type {
	case model.MessageJoin:
		r.handleJoin(sess, msg)
	case model.MessageReady:
		r.handleReady(sess)
	case model.MessageAttack:
		r.handleAttack(sess, msg)
	case model.MessageMiss:
		r.handleMiss(sess)
	case model.MessagePing:
		sess.Send(model.NewPong())
	default:
		r.sendError(sess, "Unknown message type")
	}
}

// broadcast sends a message to every attached session, in join order.
// Emission happens atomically with respect to state mutation, so sessions
// observe broadcasts in the order the actor produced them.
func (r *Room) broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.logger.Error("failed to marshal broadcast", slog.String("error", err.Error()))
		return
	}
	for _, id := range r.order {
		if sess, ok := r.sessions[id]; ok {
			sess.SendBytes(data)
		}
	}
}

func (r *Room) broadcastPlayerUpdate() {
	r.broadcast(model.NewPlayerUpdate(r.snapshotPlayers()))
}

// snapshotPlayers copies player state in join order
func (r *Room) snapshotPlayers() []model.Player {
	players := make([]model.Player, 0, len(r.players))
	for _, id := range r.order {
		if p, ok := r.players[id]; ok {
			players = append(players, *p)
		}
	}
	return players
}

func (r *Room) sendError(sess *Session, message string) {
	sess.Send(model.NewError(message))
}

// opponentOf returns the other occupied slot, or empty if none
func (r *Room) opponentOf(playerID model.PlayerID) model.PlayerID {
	for _, id := range r.order {
		if id == playerID {
			continue
		}
		if _, ok := r.players[id]; ok {
			return id
		}
	}
	return ""
}

// scheduleStep schedules a lifecycle step, guarded by the current
// generation: a room reset during the delay suppresses the step entirely
func (r *Room) scheduleStep(d time.Duration, step func()) {
	gen := r.generation
	r.clock.AfterFunc(d, func() {
		r.post(func() {
			if r.generation != gen {
				r.logger.Debug("dropping stale lifecycle step")
				return
			}
			step()
		})
	})
}

// resetRoom returns the room to a pristine waiting state so the same code
// can host a fresh match. Bumping the generation strands any lifecycle step
// still scheduled against the old match.
func (r *Room) resetRoom() {
	r.generation++
	r.players = make(map[model.PlayerID]*model.Player)
	r.sessions = make(map[model.PlayerID]*Session)
	r.authCtx = make(map[model.PlayerID]*model.AuthContext)
	r.order = nil
	r.round = 1
	r.status = model.RoomStatusWaiting
	r.winner = ""
	r.logger.Info("room reset, ready for new game")
}
