package model

import "strings"

// Game constants
const (
	InitialHP    = 100
	InitialLives = 2
	MaxRounds    = 3 // best of 3
	MaxPlayers   = 2

	RoomCodeLength = 6
)

// RoomCode is the caller-chosen identifier routing to a room actor
type RoomCode string

// RoomStatus represents the room's position in the match lifecycle
type RoomStatus string

const (
	RoomStatusWaiting  RoomStatus = "waiting"
	RoomStatusPlaying  RoomStatus = "playing"
	RoomStatusFinished RoomStatus = "finished"
)

// NormalizeRoomCode upper-cases a room code so that the same code always
// routes to the same actor regardless of client casing
func NormalizeRoomCode(code string) RoomCode {
	return RoomCode(strings.ToUpper(strings.TrimSpace(code)))
}

// ValidRoomCode reports whether the code is non-empty alphanumeric
func ValidRoomCode(code RoomCode) bool {
	if len(code) == 0 || len(code) > 32 {
		return false
	}
	for _, r := range code {
		isDigit := r >= '0' && r <= '9'
		isUpper := r >= 'A' && r <= 'Z'
		isLower := r >= 'a' && r <= 'z'
		if !isDigit && !isUpper && !isLower {
			return false
		}
	}
	return true
}
