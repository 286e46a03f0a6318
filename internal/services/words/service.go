package words

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"github.com/typefight/typefighter-go/internal/dependencies/random"
	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/storage"
)

// Service is the prompt source for rooms: it hands out a random typing
// prompt for a difficulty tier. Prompts come from storage when a pool has
// been loaded, otherwise from the embedded pool, so a room never fails to
// get a prompt for a supported tier.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new word service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger.With(slog.String("component", "words")),
	}
}

// RandomPrompt returns a random prompt for the given difficulty
func (s *Service) RandomPrompt(ctx context.Context, difficulty model.Difficulty) (*model.Word, error) {
	if !model.ValidDifficulty(difficulty) {
		return nil, model.ErrUnknownDifficulty
	}

	pool, err := s.storage.GetPrompts(ctx, difficulty)
	if err != nil {
		if !errors.Is(err, model.ErrNoPromptsForDifficulty) {
			s.logger.Warn("prompt pool unavailable, using embedded pool",
				slog.String("difficulty", string(difficulty)),
				slog.String("error", err.Error()),
			)
		}
		pool = embeddedPool[difficulty]
	}

	if len(pool) == 0 {
		return nil, model.ErrNoPromptsForDifficulty
	}

	word := pool[s.random.Intn(len(pool))]
	return &word, nil
}

// LoadFromFile seeds the storage-backed pool from a JSON file containing a
// flat array of prompts. Prompts are grouped by their difficulty field.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var pool []model.Word
	if err := json.Unmarshal(data, &pool); err != nil {
		return err
	}

	return s.LoadPrompts(ctx, pool)
}

// LoadPrompts stores a prompt pool, grouped by difficulty
func (s *Service) LoadPrompts(ctx context.Context, pool []model.Word) error {
	byDifficulty := make(map[model.Difficulty][]model.Word)
	skipped := 0
	for _, w := range pool {
		if !model.ValidDifficulty(w.Difficulty) {
			skipped++
			continue
		}
		byDifficulty[w.Difficulty] = append(byDifficulty[w.Difficulty], w)
	}

	for difficulty, words := range byDifficulty {
		if err := s.storage.SavePrompts(ctx, difficulty, words); err != nil {
			return err
		}
	}

	if skipped > 0 {
		s.logger.Warn("skipped prompts with unknown difficulty", slog.Int("count", skipped))
	}
	s.logger.Info("prompt pool loaded",
		slog.Int("total", len(pool)-skipped),
		slog.Int("difficulties", len(byDifficulty)),
	)
	return nil
}
