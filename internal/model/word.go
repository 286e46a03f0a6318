package model

// Difficulty selects a prompt tier and its damage profile
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyNormal Difficulty = "NORMAL"
	DifficultyHard   Difficulty = "HARD"
	DifficultyScore  Difficulty = "SCORE"
)

// DifficultyConfig holds the tuning parameters for one tier
type DifficultyConfig struct {
	Difficulty Difficulty
	// CharMin/CharMax bound the reading length of prompts in this tier
	CharMin int
	CharMax int
	// BaseDamage is dealt per completed prompt before the combo multiplier
	BaseDamage int
	// MaxCombo caps the combo count used in the damage multiplier
	MaxCombo int
}

// DifficultyConfigs maps each supported tier to its tuning
var DifficultyConfigs = map[Difficulty]DifficultyConfig{
	DifficultyEasy:   {Difficulty: DifficultyEasy, CharMin: 5, CharMax: 10, BaseDamage: 4, MaxCombo: 3},
	DifficultyNormal: {Difficulty: DifficultyNormal, CharMin: 10, CharMax: 18, BaseDamage: 14, MaxCombo: 5},
	DifficultyScore:  {Difficulty: DifficultyScore, CharMin: 14, CharMax: 24, BaseDamage: 16, MaxCombo: 6},
	DifficultyHard:   {Difficulty: DifficultyHard, CharMin: 18, CharMax: 30, BaseDamage: 20, MaxCombo: 7},
}

// ValidDifficulty reports whether d is a supported tier
func ValidDifficulty(d Difficulty) bool {
	_, ok := DifficultyConfigs[d]
	return ok
}

// DamageFor computes the damage dealt for completing a prompt at the given
// tier with the given combo count. The combo count is the value before the
// completing attack increments it.
func DamageFor(d Difficulty, combo int) int {
	cfg, ok := DifficultyConfigs[d]
	if !ok {
		return 0
	}
	capped := combo
	if capped > cfg.MaxCombo {
		capped = cfg.MaxCombo
	}
	multiplier := 1.0 + float64(capped)*0.1
	return int(float64(cfg.BaseDamage) * multiplier)
}

// ComboMultiplier returns the damage multiplier for the given tier and combo
func ComboMultiplier(d Difficulty, combo int) float64 {
	cfg, ok := DifficultyConfigs[d]
	if !ok {
		return 1.0
	}
	capped := combo
	if capped > cfg.MaxCombo {
		capped = cfg.MaxCombo
	}
	return 1.0 + float64(capped)*0.1
}

// WordID uniquely identifies a prompt
type WordID string

// Word is a typing prompt assigned to a player. Once assigned it is the only
// valid target of that player's next attack, matched by ID rather than text.
type Word struct {
	ID         WordID     `json:"id"`
	Text       string     `json:"text"`
	Reading    string     `json:"reading"`
	Romaji     string     `json:"romaji"`
	Difficulty Difficulty `json:"difficulty"`
	CharCount  int        `json:"charCount"`
	Category   string     `json:"category,omitempty"`
}
