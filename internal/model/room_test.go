package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoomCode(t *testing.T) {
	assert.Equal(t, RoomCode("ABC123"), NormalizeRoomCode("abc123"))
	assert.Equal(t, RoomCode("ABC123"), NormalizeRoomCode("  AbC123 "))
	assert.Equal(t, RoomCode(""), NormalizeRoomCode("   "))
}

func TestValidRoomCode(t *testing.T) {
	assert.True(t, ValidRoomCode("ABC123"))
	assert.True(t, ValidRoomCode("x"))
	assert.False(t, ValidRoomCode(""))
	assert.False(t, ValidRoomCode("ABC 123"))
	assert.False(t, ValidRoomCode("ABC-123"))
	assert.False(t, ValidRoomCode(RoomCode(make([]byte, 33))))
}

func TestPlayerResets(t *testing.T) {
	p := NewPlayer("p1", "Alice", DifficultyNormal)
	assert.Equal(t, InitialHP, p.HP)
	assert.Equal(t, InitialLives, p.Lives)

	p.HP = 10
	p.Lives = 1
	p.Combo = 4
	p.MissCount = 7
	p.IsReady = true
	p.CurrentWord = &Word{ID: "w1"}

	p.ResetForRound()
	assert.Equal(t, InitialHP, p.HP)
	assert.Equal(t, 1, p.Lives) // lives persist across rounds
	assert.Equal(t, 0, p.Combo)
	assert.Equal(t, 0, p.MissCount)
	assert.False(t, p.IsReady)
	assert.Nil(t, p.CurrentWord)

	p.ResetForMatch()
	assert.Equal(t, InitialLives, p.Lives)
}
