package model

import (
	"encoding/json"
	"fmt"
)

// MessageType tags every message crossing the websocket
type MessageType string

// Client → server message types
const (
	MessageJoin   MessageType = "join"
	MessageReady  MessageType = "ready"
	MessageAttack MessageType = "attack"
	MessageMiss   MessageType = "miss"
	MessagePing   MessageType = "ping"
)

// Server → client message types
const (
	MessageJoined             MessageType = "joined"
	MessagePlayerUpdate       MessageType = "playerUpdate"
	MessageRoundIntro         MessageType = "roundIntro"
	MessageCountdown          MessageType = "countdown"
	MessageGameStart          MessageType = "gameStart"
	MessageAttackNotification MessageType = "attackNotification"
	MessageMissNotification   MessageType = "missNotification"
	MessageKnockout           MessageType = "knockout"
	MessageRoundEnd           MessageType = "roundEnd"
	MessageGameEnd            MessageType = "gameEnd"
	MessagePlayerLeft         MessageType = "playerLeft"
	MessageError              MessageType = "error"
	MessagePong               MessageType = "pong"
)

// CountdownCleared is the sentinel count broadcast after the settle delay,
// telling clients to clear the countdown overlay
const CountdownCleared = -1

// AuthPayload is the optional identity claim carried by a join message
type AuthPayload struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

// ClientMessage is the decoded form of any inbound message. Fields beyond
// Type are populated only for the message types that carry them.
type ClientMessage struct {
	Type MessageType `json:"type"`

	// join
	PlayerName string       `json:"playerName,omitempty"`
	Difficulty Difficulty   `json:"difficulty,omitempty"`
	Auth       *AuthPayload `json:"auth,omitempty"`

	// attack
	WordID    WordID `json:"wordId,omitempty"`
	TimeTaken int    `json:"timeTaken,omitempty"` // milliseconds
	MissCount int    `json:"missCount,omitempty"`
}

// ParseClientMessage decodes a raw inbound frame
func ParseClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("invalid message format: %w", err)
	}
	return &msg, nil
}

// Server messages. Each constructor stamps the type tag so handlers can't
// send a mistagged payload.

type JoinedMessage struct {
	Type        MessageType `json:"type"`
	PlayerID    PlayerID    `json:"playerId"`
	RoomID      RoomCode    `json:"roomId"`
	PlayerCount int         `json:"playerCount"`
}

func NewJoined(playerID PlayerID, roomID RoomCode, playerCount int) JoinedMessage {
	return JoinedMessage{Type: MessageJoined, PlayerID: playerID, RoomID: roomID, PlayerCount: playerCount}
}

type PlayerUpdateMessage struct {
	Type    MessageType `json:"type"`
	Players []Player    `json:"players"`
}

func NewPlayerUpdate(players []Player) PlayerUpdateMessage {
	return PlayerUpdateMessage{Type: MessagePlayerUpdate, Players: players}
}

type RoundIntroMessage struct {
	Type  MessageType `json:"type"`
	Round int         `json:"round"`
}

func NewRoundIntro(round int) RoundIntroMessage {
	return RoundIntroMessage{Type: MessageRoundIntro, Round: round}
}

type CountdownMessage struct {
	Type  MessageType `json:"type"`
	Count int         `json:"count"`
}

func NewCountdown(count int) CountdownMessage {
	return CountdownMessage{Type: MessageCountdown, Count: count}
}

type GameStartMessage struct {
	Type  MessageType       `json:"type"`
	Round int               `json:"round"`
	Words map[PlayerID]Word `json:"words"`
}

func NewGameStart(round int, words map[PlayerID]Word) GameStartMessage {
	return GameStartMessage{Type: MessageGameStart, Round: round, Words: words}
}

type AttackNotificationMessage struct {
	Type       MessageType `json:"type"`
	AttackerID PlayerID    `json:"attackerId"`
	TargetID   PlayerID    `json:"targetId"`
	Damage     int         `json:"damage"`
	Combo      int         `json:"combo"`
	TargetHP   int         `json:"targetHp"`
	NextWord   Word        `json:"nextWord"`
}

func NewAttackNotification(attackerID, targetID PlayerID, damage, combo, targetHP int, nextWord Word) AttackNotificationMessage {
	return AttackNotificationMessage{
		Type:       MessageAttackNotification,
		AttackerID: attackerID,
		TargetID:   targetID,
		Damage:     damage,
		Combo:      combo,
		TargetHP:   targetHP,
		NextWord:   nextWord,
	}
}

type MissNotificationMessage struct {
	Type      MessageType `json:"type"`
	PlayerID  PlayerID    `json:"playerId"`
	MissCount int         `json:"missCount"`
}

func NewMissNotification(playerID PlayerID, missCount int) MissNotificationMessage {
	return MissNotificationMessage{Type: MessageMissNotification, PlayerID: playerID, MissCount: missCount}
}

type KnockoutMessage struct {
	Type           MessageType `json:"type"`
	PlayerID       PlayerID    `json:"playerId"`
	RemainingLives int         `json:"remainingLives"`
	Round          int         `json:"round"`
}

func NewKnockout(playerID PlayerID, remainingLives, round int) KnockoutMessage {
	return KnockoutMessage{Type: MessageKnockout, PlayerID: playerID, RemainingLives: remainingLives, Round: round}
}

type RoundEndMessage struct {
	Type     MessageType `json:"type"`
	Round    int         `json:"round"`
	WinnerID PlayerID    `json:"winnerId"`
	Players  []Player    `json:"players"`
}

func NewRoundEnd(round int, winnerID PlayerID, players []Player) RoundEndMessage {
	return RoundEndMessage{Type: MessageRoundEnd, Round: round, WinnerID: winnerID, Players: players}
}

type GameEndMessage struct {
	Type     MessageType `json:"type"`
	WinnerID PlayerID    `json:"winnerId"`
	Players  []Player    `json:"players"`
}

func NewGameEnd(winnerID PlayerID, players []Player) GameEndMessage {
	return GameEndMessage{Type: MessageGameEnd, WinnerID: winnerID, Players: players}
}

type PlayerLeftMessage struct {
	Type     MessageType `json:"type"`
	PlayerID PlayerID    `json:"playerId"`
}

func NewPlayerLeft(playerID PlayerID) PlayerLeftMessage {
	return PlayerLeftMessage{Type: MessagePlayerLeft, PlayerID: playerID}
}

type ErrorMessage struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}

func NewError(message string) ErrorMessage {
	return ErrorMessage{Type: MessageError, Message: message}
}

type PongMessage struct {
	Type MessageType `json:"type"`
}

func NewPong() PongMessage {
	return PongMessage{Type: MessagePong}
}

// Envelope is a minimal view of any wire message, used by clients and tests
// to dispatch on type before decoding the full payload
type Envelope struct {
	Type MessageType `json:"type"`
}
