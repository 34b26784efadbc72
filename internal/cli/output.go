package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

const timeFormat = "2006-01-02 15:04"

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
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case Streaks:
		o.printStreaks(v)
	case RecentWinners:
		o.printRecentWinners(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player view type
type Player struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	IsFavorite    bool    `json:"is_favorite"`
	GamesPlayed   int     `json:"games_played"`
	GamesWon      int     `json:"games_won"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
	WinRate       float64 `json:"win_rate"`
}

// PlayerList view type
type PlayerList struct {
	Players []Player `json:"players"`
}

// Seat view type
type Seat struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Color    string `json:"color"`
}

// Game view type
type Game struct {
	ID              string `json:"id"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time,omitempty"`
	Seats           []Seat `json:"seats"`
	WinnerID        string `json:"winner_id,omitempty"`
	Winner          string `json:"winner,omitempty"`
	Finished        bool   `json:"finished"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}

// GameList view type
type GameList struct {
	Games []Game `json:"games"`
}

// LeaderboardRow view type
type LeaderboardRow struct {
	Rank        int     `json:"rank"`
	PlayerID    string  `json:"player_id"`
	Username    string  `json:"username"`
	GamesPlayed int     `json:"games_played"`
	GamesWon    int     `json:"games_won"`
	WinRate     float64 `json:"win_rate"`
}

// Leaderboard view type
type Leaderboard struct {
	Entries []LeaderboardRow `json:"entries"`
}

// ColorRow view type
type ColorRow struct {
	Color  string `json:"color"`
	Played int    `json:"played"`
	Won    int    `json:"won"`
}

// DurationRow view type
type DurationRow struct {
	ShortestMinutes int `json:"shortest_minutes"`
	LongestMinutes  int `json:"longest_minutes"`
	AverageMinutes  int `json:"average_minutes"`
}

// RecentGameRow view type
type RecentGameRow struct {
	GameID    string `json:"game_id"`
	StartTime string `json:"start_time"`
	Color     string `json:"color"`
	Result    string `json:"result"`
}

// PlayerStats view type
type PlayerStats struct {
	Player

	FavoriteColor   string          `json:"favorite_color,omitempty"`
	FavoritePercent int             `json:"favorite_percent,omitempty"`
	BestColor       string          `json:"best_color,omitempty"`
	Colors          []ColorRow      `json:"colors,omitempty"`
	Durations       *DurationRow    `json:"durations,omitempty"`
	RecentGames     []RecentGameRow `json:"recent_games,omitempty"`
}

// StreakRow view type
type StreakRow struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
	Streak   int    `json:"streak"`
}

// Streaks view type
type Streaks struct {
	Current *StreakRow `json:"current,omitempty"`
	Longest *StreakRow `json:"longest,omitempty"`
}

// WinnerRow view type
type WinnerRow struct {
	GameID          string `json:"game_id"`
	PlayerID        string `json:"player_id"`
	Username        string `json:"username"`
	Players         int    `json:"players"`
	FinishedAt      string `json:"finished_at"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`
}

// RecentWinners view type
type RecentWinners struct {
	Winners []WinnerRow `json:"winners"`
}

func formatWinRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate*100)
}

func (o *Output) printPlayer(p Player) {
	favStr := ""
	if p.IsFavorite {
		favStr = " *"
	}
	fmt.Printf("Player: %s (%s)%s\n", p.Username, p.ID, favStr)
	fmt.Printf("Record: %d played, %d won (%s)\n", p.GamesPlayed, p.GamesWon, formatWinRate(p.WinRate))
	fmt.Printf("Streak: %d current, %d longest\n", p.CurrentStreak, p.LongestStreak)
}

func (o *Output) printPlayerList(l PlayerList) {
	if len(l.Players) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Printf("Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		favStr := ""
		if p.IsFavorite {
			favStr = " *"
		}
		fmt.Printf("  %s (%s)%s - %d played, %d won (%s)\n",
			p.Username, p.ID, favStr, p.GamesPlayed, p.GamesWon, formatWinRate(p.WinRate))
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Started: %s\n", g.StartTime)
	if g.EndTime != "" {
		fmt.Printf("Ended: %s\n", g.EndTime)
	}
	if g.DurationMinutes != nil {
		fmt.Printf("Duration: %d min\n", *g.DurationMinutes)
	}
	fmt.Printf("Seats (%d):\n", len(g.Seats))
	for _, seat := range g.Seats {
		winStr := ""
		if g.Finished && seat.PlayerID == g.WinnerID {
			winStr = " [winner]"
		}
		fmt.Printf("  %s - %s%s\n", seat.Username, seat.Color, winStr)
	}
	if g.Finished && g.Winner == "" {
		fmt.Println("Result: finished, no winner recorded")
	}
	if !g.Finished {
		fmt.Println("Status: in progress")
	}
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		status := "in progress"
		if g.Finished {
			status = "won by " + g.Winner
			if g.Winner == "" {
				status = "finished"
			}
		}
		duration := ""
		if g.DurationMinutes != nil {
			duration = fmt.Sprintf(", %d min", *g.DurationMinutes)
		}
		fmt.Printf("  %s  %s  %d players  %s%s\n", g.StartTime, g.ID, len(g.Seats), status, duration)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Println("Leaderboard:")
	for _, e := range l.Entries {
		fmt.Printf("  %d. %s - %s (%d/%d)\n", e.Rank, e.Username, formatWinRate(e.WinRate), e.GamesWon, e.GamesPlayed)
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	o.printPlayer(s.Player)

	if s.FavoriteColor != "" {
		fmt.Printf("Favorite color: %s (%d%% of games)\n", s.FavoriteColor, s.FavoritePercent)
	}
	if s.BestColor != "" {
		fmt.Printf("Best color: %s\n", s.BestColor)
	}
	if len(s.Colors) > 0 {
		fmt.Println("Colors:")
		for _, c := range s.Colors {
			fmt.Printf("  %s: %d played, %d won\n", c.Color, c.Played, c.Won)
		}
	}

	if s.Durations != nil {
		fmt.Printf("Won game length: %d min shortest, %d min longest, %d min average\n",
			s.Durations.ShortestMinutes, s.Durations.LongestMinutes, s.Durations.AverageMinutes)
	}

	if len(s.RecentGames) > 0 {
		fmt.Println("Recent games:")
		for _, g := range s.RecentGames {
			fmt.Printf("  %s  %s  %s  %s\n", g.StartTime, g.GameID, g.Color, g.Result)
		}
	}
}

func (o *Output) printStreaks(s Streaks) {
	if s.Current == nil && s.Longest == nil {
		fmt.Println("No streaks yet")
		return
	}
	if s.Current != nil {
		fmt.Printf("Hot right now: %s (%d wins in a row)\n", s.Current.Username, s.Current.Streak)
	}
	if s.Longest != nil {
		fmt.Printf("All-time best: %s (%d wins in a row)\n", s.Longest.Username, s.Longest.Streak)
	}
}

func (o *Output) printRecentWinners(r RecentWinners) {
	if len(r.Winners) == 0 {
		fmt.Println("No finished games")
		return
	}
	fmt.Println("Recent winners:")
	for _, w := range r.Winners {
		duration := ""
		if w.DurationMinutes != nil {
			duration = fmt.Sprintf(" (%d min)", *w.DurationMinutes)
		}
		fmt.Printf("  %s  %s won with %d players%s\n", w.FinishedAt, w.Username, w.Players, duration)
	}
}
