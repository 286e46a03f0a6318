package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Match:
		o.printMatch(v)
	case Streak:
		o.printStreak(v)
	case HealthResult:
		o.printHealthResult(v)
	case SeedResult:
		fmt.Printf("Loaded %d prompts\n", v.Loaded)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Match response type (matches API)
type Match struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"roomId"`
	WinnerName   string    `json:"winnerName"`
	LoserName    string    `json:"loserName"`
	RoundsPlayed int       `json:"roundsPlayed"`
	EndedAt      time.Time `json:"endedAt"`
}

// Streak response type
type Streak struct {
	UserID        string    `json:"userId"`
	CurrentStreak int       `json:"currentStreak"`
	BestStreak    int       `json:"bestStreak"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
	Rooms  int    `json:"rooms"`
}

// SeedResult response type
type SeedResult struct {
	Loaded int `json:"loaded"`
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.ID)
	fmt.Printf("Room: %s\n", m.RoomID)
	fmt.Printf("Winner: %s\n", m.WinnerName)
	fmt.Printf("Loser: %s\n", m.LoserName)
	fmt.Printf("Rounds: %d\n", m.RoundsPlayed)
	fmt.Printf("Ended: %s\n", m.EndedAt.Format(time.RFC3339))
}

func (o *Output) printStreak(s Streak) {
	fmt.Printf("User: %s\n", s.UserID)
	fmt.Printf("Current Streak: %d\n", s.CurrentStreak)
	fmt.Printf("Best Streak: %d\n", s.BestStreak)
	if !s.UpdatedAt.IsZero() {
		fmt.Printf("Updated: %s\n", s.UpdatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	fmt.Printf("Rooms: %d\n", h.Rooms)
}
