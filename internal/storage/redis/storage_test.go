package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/typefight/typefighter-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.MatchTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Prompt pool tests

func (s *StorageSuite) TestSaveAndGetPrompts() {
	words := []model.Word{
		{ID: "w1", Text: "こんにちは", Romaji: "konnichiwa", Difficulty: model.DifficultyEasy, CharCount: 5},
		{ID: "w2", Text: "ありがとう", Romaji: "arigatou", Difficulty: model.DifficultyEasy, CharCount: 5},
	}
	s.Require().NoError(s.storage.SavePrompts(s.ctx, model.DifficultyEasy, words))

	got, err := s.storage.GetPrompts(s.ctx, model.DifficultyEasy)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("konnichiwa", got[0].Romaji)
	s.Equal(model.DifficultyEasy, got[0].Difficulty)
}

func (s *StorageSuite) TestGetPromptsMissing() {
	_, err := s.storage.GetPrompts(s.ctx, model.DifficultyHard)
	s.ErrorIs(err, model.ErrNoPromptsForDifficulty)
}

func (s *StorageSuite) TestPromptsIsolatedByDifficulty() {
	s.Require().NoError(s.storage.SavePrompts(s.ctx, model.DifficultyEasy,
		[]model.Word{{ID: "w1", Difficulty: model.DifficultyEasy}}))

	_, err := s.storage.GetPrompts(s.ctx, model.DifficultyNormal)
	s.ErrorIs(err, model.ErrNoPromptsForDifficulty)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := &model.MatchRecord{
		ID:           "m_1",
		RoomID:       "ABC123",
		WinnerUserID: "user-a",
		LoserUserID:  "user-b",
		WinnerName:   "Alice",
		LoserName:    "Bob",
		RoundsPlayed: 3,
		EndedAt:      time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	got, err := s.storage.GetMatch(s.ctx, "m_1")
	s.Require().NoError(err)
	s.Equal(match.WinnerUserID, got.WinnerUserID)
	s.Equal(match.WinnerName, got.WinnerName)
	s.Equal(match.RoundsPlayed, got.RoundsPlayed)
	s.True(match.EndedAt.Equal(got.EndedAt))
}

func (s *StorageSuite) TestMatchExpiresWithTTL() {
	match := &model.MatchRecord{ID: "m_1", RoomID: "ABC123"}
	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetMatch(s.ctx, "m_1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "m_missing")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Streak tests

func (s *StorageSuite) TestGetStreakDefaultsToZero() {
	streak, err := s.storage.GetStreak(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("user-1", streak.UserID)
	s.Equal(0, streak.CurrentStreak)
}

func (s *StorageSuite) TestSaveAndGetStreak() {
	streak := &model.Streak{
		UserID:        "user-1",
		CurrentStreak: 4,
		BestStreak:    7,
		UpdatedAt:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SaveStreak(s.ctx, streak))

	got, err := s.storage.GetStreak(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(4, got.CurrentStreak)
	s.Equal(7, got.BestStreak)
}
