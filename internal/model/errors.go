package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrUsernameEmpty  = errors.New("username must not be empty")

	// Roster errors
	ErrRosterTooSmall  = errors.New("roster needs at least three players")
	ErrDuplicatePlayer = errors.New("player appears more than once in roster")
	ErrDuplicateColor  = errors.New("color appears more than once in roster")
	ErrInvalidColor    = errors.New("invalid seat color")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameFinished    = errors.New("game is already finished")
	ErrGameNotFinished = errors.New("game is not finished")
	ErrWinnerNotInGame = errors.New("winner is not in the game's roster")
)
