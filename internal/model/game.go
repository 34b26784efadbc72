package model

import "time"

// GameID uniquely identifies a game
type GameID string

// MinRosterSize is the smallest roster a game can be created with.
const MinRosterSize = 3

// Seat pairs a player with the color they played in one game
type Seat struct {
	PlayerID PlayerID
	Color    Color
}

// Game is one recorded session. The roster is fixed at creation; only
// WinnerID, IsFinished and EndTime change afterwards.
type Game struct {
	ID        GameID
	StartTime time.Time
	EndTime   *time.Time

	Players []Seat

	// WinnerID is empty while the game is open; once set it is always a
	// member of the roster.
	WinnerID   PlayerID
	IsFinished bool
}

// HasPlayer reports whether the given player sits in this game's roster
func (g *Game) HasPlayer(id PlayerID) bool {
	for _, seat := range g.Players {
		if seat.PlayerID == id {
			return true
		}
	}
	return false
}

// SeatOf returns the roster seat for the given player
func (g *Game) SeatOf(id PlayerID) (Seat, bool) {
	for _, seat := range g.Players {
		if seat.PlayerID == id {
			return seat, true
		}
	}
	return Seat{}, false
}

// Duration returns the elapsed time between start and end.
// The second return is false while the game has no end time.
func (g *Game) Duration() (time.Duration, bool) {
	if g.EndTime == nil {
		return 0, false
	}
	return g.EndTime.Sub(g.StartTime), true
}
