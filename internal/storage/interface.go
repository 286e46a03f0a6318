package storage

import (
	"context"

	"github.com/typefight/typefighter-go/internal/model"
)

// Storage defines the interface for data persistence. It backs the prompt
// pool served to rooms and the durable match-outcome records written when a
// match ends; rooms themselves hold no persistent state here.
type Storage interface {
	// Prompt pool operations
	SavePrompts(ctx context.Context, difficulty model.Difficulty, words []model.Word) error
	GetPrompts(ctx context.Context, difficulty model.Difficulty) ([]model.Word, error)

	// Match operations
	SaveMatch(ctx context.Context, match *model.MatchRecord) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error)

	// Streak operations
	GetStreak(ctx context.Context, userID string) (*model.Streak, error)
	SaveStreak(ctx context.Context, streak *model.Streak) error
}
