package model

import "errors"

// Common errors used across the application. Protocol-level rejections
// inside a room are reported to the offending session as error messages
// rather than surfaced as Go errors, so they have no sentinels here.
var (
	// Room errors
	ErrInvalidRoomCode = errors.New("invalid room code")

	// Word errors
	ErrNoPromptsForDifficulty = errors.New("no prompts available for difficulty")
	ErrUnknownDifficulty      = errors.New("unknown difficulty")

	// Auth errors
	ErrTokenInvalid    = errors.New("token invalid")
	ErrUserMismatch    = errors.New("token does not belong to claimed user")
	ErrAuthUnavailable = errors.New("auth verifier unavailable")

	// Result errors
	ErrMatchNotFound = errors.New("match not found")
)
