package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// UnknownPlayerName is the placeholder shown for a player that has been
// deleted but is still referenced by recorded games.
const UnknownPlayerName = "Unknown Player"

// Player represents a member of the game group.
//
// GamesPlayed, GamesWon, CurrentWinStreak and LongestWinStreak are a cache
// of what the stats engine derives from the game log; they are refreshed
// wholesale after every log mutation, never patched incrementally.
type Player struct {
	ID         PlayerID
	Username   string
	IsFavorite bool

	GamesPlayed      int
	GamesWon         int
	CurrentWinStreak int
	LongestWinStreak int

	CreatedAt time.Time
}

// WinRate returns the player's win rate in [0, 1], 0 when no games played.
func (p *Player) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed)
}
