package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/typefight/typefighter-go/internal/model"
	"github.com/typefight/typefighter-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Prompt pool operations

func (s *Storage) SavePrompts(ctx context.Context, difficulty model.Difficulty, words []model.Word) error {
	data, err := json.Marshal(words)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, promptsKey(difficulty), data, 0).Err()
}

func (s *Storage) GetPrompts(ctx context.Context, difficulty model.Difficulty) ([]model.Word, error) {
	data, err := s.client.Get(ctx, promptsKey(difficulty)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoPromptsForDifficulty
		}
		return nil, err
	}

	var words []model.Word
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, model.ErrNoPromptsForDifficulty
	}
	return words, nil
}

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.MatchRecord) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, matchKey(match.ID), data, s.cfg.MatchTTL).Err()
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.MatchRecord, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.MatchRecord
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// Streak operations

func (s *Storage) GetStreak(ctx context.Context, userID string) (*model.Streak, error) {
	data, err := s.client.Get(ctx, streakKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &model.Streak{UserID: userID}, nil
		}
		return nil, err
	}

	var streak model.Streak
	if err := json.Unmarshal(data, &streak); err != nil {
		return nil, err
	}
	return &streak, nil
}

func (s *Storage) SaveStreak(ctx context.Context, streak *model.Streak) error {
	data, err := json.Marshal(streak)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, streakKey(streak.UserID), data, 0).Err()
}
