package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"github.com/typefight/typefighter-go/internal/api"
	"github.com/typefight/typefighter-go/internal/factory"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/testutil"
)

type APISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
	ctx    context.Context
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APISuite))
}

func (s *APISuite) SetupTest() {
	s.app = factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		RoomManager:    s.app.RoomManager,
		ResultsService: s.app.ResultsService,
		WordService:    s.app.WordService,
	})
	s.server = httptest.NewServer(router)
	s.ctx = context.Background()
}

func (s *APISuite) TearDownTest() {
	s.server.Close()
	s.app.RoomManager.CloseAll()
}

func (s *APISuite) getJSON(path string, out any) int {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *APISuite) TestHealth() {
	var body map[string]any
	status := s.getJSON("/api/v1/health", &body)

	s.Equal(http.StatusOK, status)
	s.Equal("ok", body["status"])
	s.Equal(float64(0), body["rooms"])
}

func (s *APISuite) TestGetMatch() {
	match := &model.MatchRecord{
		RoomID:       "ABC123",
		WinnerUserID: "user-a",
		LoserUserID:  "user-b",
		WinnerName:   "Alice",
		LoserName:    "Bob",
		RoundsPlayed: 2,
	}
	s.Require().NoError(s.app.ResultsService.RecordMatch(s.ctx, match))

	var body map[string]any
	status := s.getJSON("/api/v1/matches/"+string(match.ID), &body)

	s.Equal(http.StatusOK, status)
	s.Equal("Alice", body["winnerName"])
	s.Equal("Bob", body["loserName"])
	s.Equal(float64(2), body["roundsPlayed"])

	// External user ids stay out of the public payload
	s.NotContains(body, "winnerUserId")
	s.NotContains(body, "loserUserId")
}

func (s *APISuite) TestGetMatchNotFound() {
	var body map[string]any
	status := s.getJSON("/api/v1/matches/m_missing", &body)

	s.Equal(http.StatusNotFound, status)
	errBody := body["error"].(map[string]any)
	s.Equal("MATCH_NOT_FOUND", errBody["code"])
}

func (s *APISuite) TestGetStreak() {
	s.Require().NoError(s.app.Storage.SaveStreak(s.ctx, &model.Streak{
		UserID:        "user-1",
		CurrentStreak: 2,
		BestStreak:    4,
		UpdatedAt:     time.Now(),
	}))

	var body map[string]any
	status := s.getJSON("/api/v1/streaks/user-1", &body)

	s.Equal(http.StatusOK, status)
	s.Equal("user-1", body["userId"])
	s.Equal(float64(2), body["currentStreak"])
	s.Equal(float64(4), body["bestStreak"])
}

func (s *APISuite) TestGetStreakUnknownUserIsZero() {
	var body map[string]any
	status := s.getJSON("/api/v1/streaks/nobody", &body)

	s.Equal(http.StatusOK, status)
	s.Equal(float64(0), body["currentStreak"])
}

func (s *APISuite) postJSON(path, body string, out any) int {
	resp, err := http.Post(s.server.URL+path, "application/json", strings.NewReader(body))
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (s *APISuite) TestSeedPrompts() {
	pool := `[
		{"id": "w1", "text": "ねこ", "romaji": "neko", "difficulty": "EASY", "charCount": 2},
		{"id": "w2", "text": "いぬ", "romaji": "inu", "difficulty": "EASY", "charCount": 2},
		{"id": "w3", "text": "???", "romaji": "bad", "difficulty": "NIGHTMARE", "charCount": 3}
	]`

	var body map[string]any
	status := s.postJSON("/api/v1/prompts", pool, &body)

	s.Equal(http.StatusOK, status)
	s.Equal(float64(2), body["loaded"])

	stored, err := s.app.Storage.GetPrompts(s.ctx, model.DifficultyEasy)
	s.Require().NoError(err)
	s.Len(stored, 2)
}

func (s *APISuite) TestSeedPromptsRejectsBadBody() {
	var body map[string]any
	status := s.postJSON("/api/v1/prompts", `{"not": "an array"}`, &body)

	s.Equal(http.StatusBadRequest, status)
	errBody := body["error"].(map[string]any)
	s.Equal("INVALID_REQUEST", errBody["code"])

	status = s.postJSON("/api/v1/prompts", `[]`, &body)
	s.Equal(http.StatusBadRequest, status)
}

// WebSocket endpoint tests

func (s *APISuite) wsURL(code string) string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws/" + code
}

func (s *APISuite) TestWebSocketJoin() {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL("abc123"), nil)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.Require().NoError(conn.WriteJSON(map[string]any{
		"type":       "join",
		"playerName": "Alice",
		"difficulty": "NORMAL",
	}))

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	var joined map[string]any
	s.Require().NoError(conn.ReadJSON(&joined))
	s.Equal("joined", joined["type"])
	s.Equal("ABC123", joined["roomId"])
	s.NotEmpty(joined["playerId"])

	var update map[string]any
	s.Require().NoError(conn.ReadJSON(&update))
	s.Equal("playerUpdate", update["type"])

	s.Equal(1, s.app.RoomManager.RoomCount())
}

func (s *APISuite) TestWebSocketInvalidRoomCode() {
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("bad%20code"), nil)
	s.Error(err)
	if resp != nil {
		s.Equal(http.StatusBadRequest, resp.StatusCode)
	}
}

func (s *APISuite) TestWebSocketPing() {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL("pingroom"), nil)
	s.Require().NoError(err)
	defer func() { _ = conn.Close() }()

	s.Require().NoError(conn.WriteJSON(map[string]string{"type": "ping"}))
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	var pong map[string]any
	s.Require().NoError(conn.ReadJSON(&pong))
	s.Equal("pong", pong["type"])
}
