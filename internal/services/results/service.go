package results

import (
	"context"
	"log/slog"

	"github.com/typefight/typefighter-go/internal/dependencies/clock"
	"github.com/typefight/typefighter-go/internal/dependencies/random"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/storage"
)

// Service records completed-match outcomes and maintains win streak
// counters. Rooms call it best-effort after the game-end broadcast; nothing
// here ever feeds back into room state.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new results service
func New(storage storage.Storage, clock clock.Clock, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		logger:  logger.With(slog.String("component", "results")),
	}
}

// RecordMatch persists a completed match and updates both contestants'
// streaks: the winner's extends, the loser's (when identified) resets.
func (s *Service) RecordMatch(ctx context.Context, match *model.MatchRecord) error {
	if match.ID == "" {
		match.ID = model.MatchID(s.random.ID("m_"))
	}
	if match.EndedAt.IsZero() {
		match.EndedAt = s.clock.Now()
	}

	if err := s.storage.SaveMatch(ctx, match); err != nil {
		return err
	}

	if err := s.extendStreak(ctx, match.WinnerUserID); err != nil {
		s.logger.Warn("failed to extend winner streak",
			slog.String("user_id", match.WinnerUserID),
			slog.String("error", err.Error()),
		)
	}
	if match.LoserUserID != "" {
		if err := s.ResetStreak(ctx, match.LoserUserID); err != nil {
			s.logger.Warn("failed to reset loser streak",
				slog.String("user_id", match.LoserUserID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.logger.Info("match recorded",
		slog.String("match_id", string(match.ID)),
		slog.String("room_id", string(match.RoomID)),
		slog.String("winner_user_id", match.WinnerUserID),
	)
	return nil
}

// GetMatch looks up a recorded match by id
func (s *Service) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error) {
	return s.storage.GetMatch(ctx, id)
}

// ResetStreak zeroes a user's running streak
func (s *Service) ResetStreak(ctx context.Context, userID string) error {
	streak, err := s.storage.GetStreak(ctx, userID)
	if err != nil {
		return err
	}

	streak.CurrentStreak = 0
	streak.UpdatedAt = s.clock.Now()
	return s.storage.SaveStreak(ctx, streak)
}

// GetStreak returns a user's streak counters
func (s *Service) GetStreak(ctx context.Context, userID string) (*model.Streak, error) {
	return s.storage.GetStreak(ctx, userID)
}

func (s *Service) extendStreak(ctx context.Context, userID string) error {
	streak, err := s.storage.GetStreak(ctx, userID)
	if err != nil {
		return err
	}

	streak.CurrentStreak++
	if streak.CurrentStreak > streak.BestStreak {
		streak.BestStreak = streak.CurrentStreak
	}
	streak.UpdatedAt = s.clock.Now()
	return s.storage.SaveStreak(ctx, streak)
}
