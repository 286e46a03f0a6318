package response

import (
	"time"

	"github.com/typefight/typefighter-go/internal/model"
)

// Health is the health check response
type Health struct {
	Status string `json:"status"`
	Rooms  int    `json:"rooms"`
}

// SeedResult reports how many prompts a pool seed accepted
type SeedResult struct {
	Loaded int `json:"loaded"`
}

// Match is a recorded match outcome
type Match struct {
	ID           model.MatchID  `json:"id"`
	RoomID       model.RoomCode `json:"roomId"`
	WinnerName   string         `json:"winnerName"`
	LoserName    string         `json:"loserName"`
	RoundsPlayed int            `json:"roundsPlayed"`
	EndedAt      time.Time      `json:"endedAt"`
}

// MatchFromModel converts a stored match record, omitting user ids
func MatchFromModel(m *model.MatchRecord) Match {
	return Match{
		ID:           m.ID,
		RoomID:       m.RoomID,
		WinnerName:   m.WinnerName,
		LoserName:    m.LoserName,
		RoundsPlayed: m.RoundsPlayed,
		EndedAt:      m.EndedAt,
	}
}

// Streak is a user's win streak counters
type Streak struct {
	UserID        string    `json:"userId"`
	CurrentStreak int       `json:"currentStreak"`
	BestStreak    int       `json:"bestStreak"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StreakFromModel converts stored streak counters
func StreakFromModel(s *model.Streak) Streak {
	return Streak{
		UserID:        s.UserID,
		CurrentStreak: s.CurrentStreak,
		BestStreak:    s.BestStreak,
		UpdatedAt:     s.UpdatedAt,
	}
}
