package model

// PlayerID uniquely identifies a player within a room. Generated server-side
// and unguessable; never reused across matches.
type PlayerID string

// Player holds one contestant's in-match state. Owned exclusively by the
// room actor; sessions never mutate it directly.
type Player struct {
	ID          PlayerID   `json:"playerId"`
	Name        string     `json:"playerName"`
	Difficulty  Difficulty `json:"difficulty"`
	HP          int        `json:"hp"`
	Lives       int        `json:"lives"`
	Combo       int        `json:"combo"`
	MissCount   int        `json:"missCount"`
	CurrentWord *Word      `json:"currentWord"`
	IsReady     bool       `json:"isReady"`
}

// NewPlayer initializes a player with full HP and lives and no prompt
func NewPlayer(id PlayerID, name string, difficulty Difficulty) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Difficulty: difficulty,
		HP:         InitialHP,
		Lives:      InitialLives,
	}
}

// ResetForRound clears per-round state. Lives persist across rounds.
func (p *Player) ResetForRound() {
	p.HP = InitialHP
	p.Combo = 0
	p.MissCount = 0
	p.IsReady = false
	p.CurrentWord = nil
}

// ResetForMatch restores the player to their pre-match state
func (p *Player) ResetForMatch() {
	p.ResetForRound()
	p.Lives = InitialLives
}

// AuthContext attributes a player to a durable external identity. Present
// only when the join request carried an auth payload; UserID falls back to
// the claimed id when verification could not be completed.
type AuthContext struct {
	UserID   string
	Verified bool
}
