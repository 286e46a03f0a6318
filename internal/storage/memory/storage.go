package memory

import (
	"context"
	"sync"

	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	prompts map[model.Difficulty][]model.Word
	matches map[model.MatchID]*model.MatchRecord
	streaks map[string]*model.Streak
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		prompts: make(map[model.Difficulty][]model.Word),
		matches: make(map[model.MatchID]*model.MatchRecord),
		streaks: make(map[string]*model.Streak),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Prompt pool operations

func (s *Storage) SavePrompts(ctx context.Context, difficulty model.Difficulty, words []model.Word) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts[difficulty] = append([]model.Word(nil), words...)
	return nil
}

func (s *Storage) GetPrompts(ctx context.Context, difficulty model.Difficulty) ([]model.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words, ok := s.prompts[difficulty]
	if !ok || len(words) == 0 {
		return nil, model.ErrNoPromptsForDifficulty
	}
	return append([]model.Word(nil), words...), nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *match
	s.matches[match.ID] = &copied
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	copied := *match
	return &copied, nil
}

// Streak operations

func (s *Storage) GetStreak(ctx context.Context, userID string) (*model.Streak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	streak, ok := s.streaks[userID]
	if !ok {
		return &model.Streak{UserID: userID}, nil
	}
	copied := *streak
	return &copied, nil
}

func (s *Storage) SaveStreak(ctx context.Context, streak *model.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *streak
	s.streaks[streak.UserID] = &copied
	return nil
}
