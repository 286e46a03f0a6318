package room

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/typefight/typefighter-go/internal/dependencies/mocks"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/testutil"
)

// fakeConn records everything written to it
type fakeConn struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (c *fakeConn) WriteMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	buf := append([]byte(nil), data...)
	c.frames = append(c.frames, buf)
	return nil
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

// ofType returns all recorded messages with the given type tag, decoded into
// generic maps
func (c *fakeConn) ofType(t model.MessageType) []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []map[string]any
	for _, frame := range c.frames {
		var env model.Envelope
		if err := json.Unmarshal(frame, &env); err != nil {
			continue
		}
		if env.Type != t {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(frame, &m); err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (c *fakeConn) lastOfType(t model.MessageType) map[string]any {
	msgs := c.ofType(t)
	if len(msgs) == 0 {
		return nil
	}
	return msgs[len(msgs)-1]
}

func (c *fakeConn) countOfType(t model.MessageType) int {
	return len(c.ofType(t))
}

// fakePrompts hands out sequentially numbered words
type fakePrompts struct {
	mu   sync.Mutex
	next int
	fail bool
}

func (p *fakePrompts) RandomPrompt(ctx context.Context, difficulty model.Difficulty) (*model.Word, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail {
		return nil, model.ErrNoPromptsForDifficulty
	}
	p.next++
	return &model.Word{
		ID:         model.WordID(fmt.Sprintf("w%d", p.next)),
		Text:       fmt.Sprintf("word%d", p.next),
		Difficulty: difficulty,
	}, nil
}

func (p *fakePrompts) setFail(fail bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = fail
}

// fakeVerifier resolves tokens from a fixed map
type fakeVerifier struct {
	mu     sync.Mutex
	tokens map[string]string // token -> user id
	calls  int
}

func (v *fakeVerifier) VerifyClaim(ctx context.Context, claimedUserID, accessToken string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls++
	userID, ok := v.tokens[accessToken]
	if !ok {
		return "", model.ErrTokenInvalid
	}
	if userID != claimedUserID {
		return "", model.ErrUserMismatch
	}
	return userID, nil
}

// fakeResults records persistence calls
type fakeResults struct {
	mu      sync.Mutex
	matches []*model.MatchRecord
	resets  []string
}

func (r *fakeResults) RecordMatch(ctx context.Context, match *model.MatchRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *match
	r.matches = append(r.matches, &copied)
	return nil
}

func (r *fakeResults) ResetStreak(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets = append(r.resets, userID)
	return nil
}

func (r *fakeResults) recordedMatches() []*model.MatchRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.MatchRecord(nil), r.matches...)
}

func (r *fakeResults) streakResets() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.resets...)
}

// testRoom bundles a running room actor with its mocks and helpers
type testRoom struct {
	room    *Room
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	prompts *fakePrompts
	results *fakeResults
	auth    *fakeVerifier
}

func newTestRoom() *testRoom {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	rnd := mocks.NewMockRandom()
	prompts := &fakePrompts{}
	results := &fakeResults{}
	auth := &fakeVerifier{tokens: map[string]string{}}

	r := newRoom("ABC123", Dependencies{
		Clock:   clk,
		Random:  rnd,
		Prompts: prompts,
		Auth:    auth,
		Results: results,
	}, testutil.NopLogger())
	go r.run()

	return &testRoom{
		room:    r,
		clock:   clk,
		random:  rnd,
		prompts: prompts,
		results: results,
		auth:    auth,
	}
}

func (tr *testRoom) stop() {
	tr.room.close()
}

// barrier blocks until the actor has drained everything posted before it
func (tr *testRoom) barrier() {
	done := make(chan struct{})
	tr.room.post(func() { close(done) })
	<-done
}

// send delivers a raw message and waits for it to be processed
func (tr *testRoom) send(sess *Session, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	tr.room.Deliver(sess, data)
	tr.barrier()
}

// advance steps the mock clock and waits for any posted steps to drain.
// Scheduled steps post to the actor and the actor schedules the follow-up,
// so an advance must cover at most one lifecycle step; chain advances to
// walk multi-step sequences.
func (tr *testRoom) advance(d time.Duration) {
	tr.clock.Advance(d)
	tr.barrier()
}

// advanceCountdown walks the full intro and countdown sequence, leaving the
// room with the round open for play
func (tr *testRoom) advanceCountdown() {
	tr.advance(roundIntroDwell)
	for i := 0; i <= countdownFrom; i++ {
		tr.advance(countdownTick)
	}
	tr.advance(gameStartSettle)
}

// connect opens a session on a fresh fake connection
func (tr *testRoom) connect() (*Session, *fakeConn) {
	conn := &fakeConn{}
	sess := NewSession(conn, testutil.NopLogger())
	return sess, conn
}

// join connects and joins a player, returning their id
func (tr *testRoom) join(name string, difficulty model.Difficulty) (*Session, *fakeConn, model.PlayerID) {
	sess, conn := tr.connect()
	tr.send(sess, map[string]any{
		"type":       "join",
		"playerName": name,
		"difficulty": difficulty,
	})
	tr.flush(sess)

	joined := conn.lastOfType(model.MessageJoined)
	if joined == nil {
		return sess, conn, ""
	}
	return sess, conn, model.PlayerID(joined["playerId"].(string))
}

// flush waits until the session's writer goroutine has drained everything
// the actor enqueued. Broadcast only enqueues; the write to the fake conn
// happens on the writer goroutine.
func (tr *testRoom) flush(sessions ...*Session) {
	tr.barrier()
	deadline := time.Now().Add(2 * time.Second)
	for _, sess := range sessions {
		for time.Now().Before(deadline) {
			if len(sess.send) == 0 {
				break
			}
			time.Sleep(time.Millisecond)
		}
	}
	// Allow the in-flight frame, already popped from the queue, to land
	time.Sleep(5 * time.Millisecond)
}

// playerState reads a player's state on the actor goroutine
func (tr *testRoom) playerState(id model.PlayerID) *model.Player {
	var out *model.Player
	done := make(chan struct{})
	tr.room.post(func() {
		if p, ok := tr.room.players[id]; ok {
			copied := *p
			out = &copied
		}
		close(done)
	})
	<-done
	return out
}

// occupancy reads the player and session counts on the actor goroutine
func (tr *testRoom) occupancy() (players, sessions int) {
	done := make(chan struct{})
	tr.room.post(func() {
		players = len(tr.room.players)
		sessions = len(tr.room.sessions)
		close(done)
	})
	<-done
	return players, sessions
}

// roomState reads the room's status, round, and winner on the actor goroutine
func (tr *testRoom) roomState() (model.RoomStatus, int, model.PlayerID) {
	var (
		status model.RoomStatus
		round  int
		winner model.PlayerID
	)
	done := make(chan struct{})
	tr.room.post(func() {
		status = tr.room.status
		round = tr.room.round
		winner = tr.room.winner
		close(done)
	})
	<-done
	return status, round, winner
}
