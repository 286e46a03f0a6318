package redis

import (
	"fmt"

	"github.com/typefight/typefighter-go/internal/model"
)

// Key prefix for all typefighter data
const keyPrefix = "tfight"

// promptsKey returns the Redis key for a difficulty's prompt pool
func promptsKey(difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:prompts:%s", keyPrefix, difficulty)
}

// matchKey returns the Redis key for a MatchRecord
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// streakKey returns the Redis key for a user's Streak
func streakKey(userID string) string {
	return fmt.Sprintf("%s:streak:%s", keyPrefix, userID)
}
