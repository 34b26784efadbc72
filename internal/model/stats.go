package model

import "time"

// LeaderboardEntry is one row of the win-rate leaderboard
type LeaderboardEntry struct {
	PlayerID    PlayerID
	Username    string
	GamesPlayed int
	GamesWon    int
	WinRate     float64
}

// ColorCount tallies one color's games for a player
type ColorCount struct {
	Color  Color
	Played int
	Won    int
}

// ColorStatistics aggregates a player's per-color record.
// FavoriteColor is the most-played color, empty when the player has sat in
// no games; BestColor is the most-won color, empty when the player has no
// wins.
type ColorStatistics struct {
	Counts []ColorCount

	FavoriteColor Color
	// FavoritePercent is the share of the player's games played in the
	// favorite color, as a rounded percentage.
	FavoritePercent int
	BestColor       Color
}

// DurationStatistics summarizes the lengths of a player's won games, in
// whole minutes. Produced only when at least one won game has both
// timestamps; callers receive nil otherwise, never a zeroed value.
type DurationStatistics struct {
	ShortestMinutes int
	LongestMinutes  int
	AverageMinutes  int
}

// GameResult is a single game from one player's perspective
type GameResult struct {
	GameID     GameID
	StartTime  time.Time
	Won        bool
	Color      Color
	IsFinished bool
}

// PlayerSummary is the full derived view of one player
type PlayerSummary struct {
	PlayerID    PlayerID
	Username    string
	GamesPlayed int
	GamesWon    int
	WinRate     float64

	CurrentStreak int
	LongestStreak int

	Colors    ColorStatistics
	Durations *DurationStatistics

	// RecentGames holds the player's most recent games, newest first
	RecentGames []GameResult
}

// StreakLeader names the holder of a streak record
type StreakLeader struct {
	PlayerID PlayerID
	Username string
	Streak   int
}

// RecentWinner is one entry of the recent-winners feed
type RecentWinner struct {
	GameID     GameID
	PlayerID   PlayerID
	Username   string
	Players    int
	FinishedAt time.Time

	// DurationMinutes is nil when the game is missing a timestamp
	DurationMinutes *int
}
