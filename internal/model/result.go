package model

import "time"

// MatchID uniquely identifies a recorded match
type MatchID string

// MatchRecord is the durable outcome of a completed match. WinnerUserID is
// always a resolvable external identity; LoserUserID is empty when the loser
// played anonymously.
type MatchRecord struct {
	ID           MatchID  `json:"id"`
	RoomID       RoomCode `json:"roomId"`
	WinnerUserID string   `json:"winnerUserId"`
	LoserUserID  string   `json:"loserUserId,omitempty"`
	WinnerName   string   `json:"winnerName"`
	LoserName    string   `json:"loserName"`
	RoundsPlayed int      `json:"roundsPlayed"`
	EndedAt      time.Time `json:"endedAt"`
}

// Streak tracks a user's running win streak
type Streak struct {
	UserID        string    `json:"userId"`
	CurrentStreak int       `json:"currentStreak"`
	BestStreak    int       `json:"bestStreak"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
