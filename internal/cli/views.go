package cli

import (
	"context"
	"math"

	"github.com/mcoot/gamenight-go/internal/model"
)

// Converters from model types to the CLI view types

func playerView(p *model.Player) Player {
	return Player{
		ID:            string(p.ID),
		Username:      p.Username,
		IsFavorite:    p.IsFavorite,
		GamesPlayed:   p.GamesPlayed,
		GamesWon:      p.GamesWon,
		CurrentStreak: p.CurrentWinStreak,
		LongestStreak: p.LongestWinStreak,
		WinRate:       p.WinRate(),
	}
}

func playerListView(players []*model.Player) PlayerList {
	list := PlayerList{Players: make([]Player, 0, len(players))}
	for _, p := range players {
		list.Players = append(list.Players, playerView(p))
	}
	return list
}

func gameView(ctx context.Context, g *model.Game) Game {
	view := Game{
		ID:        string(g.ID),
		StartTime: g.StartTime.Format(timeFormat),
		Finished:  g.IsFinished,
		Seats:     make([]Seat, 0, len(g.Players)),
	}

	for _, seat := range g.Players {
		view.Seats = append(view.Seats, Seat{
			PlayerID: string(seat.PlayerID),
			Username: app.PlayerService.ResolveUsername(ctx, seat.PlayerID),
			Color:    string(seat.Color),
		})
	}

	if g.EndTime != nil {
		view.EndTime = g.EndTime.Format(timeFormat)
	}
	if g.WinnerID != "" {
		view.WinnerID = string(g.WinnerID)
		view.Winner = app.PlayerService.ResolveUsername(ctx, g.WinnerID)
	}
	if elapsed, ok := g.Duration(); ok {
		minutes := int(math.Round(elapsed.Minutes()))
		view.DurationMinutes = &minutes
	}

	return view
}

func gameListView(ctx context.Context, games []*model.Game) GameList {
	list := GameList{Games: make([]Game, 0, len(games))}
	for _, g := range games {
		list.Games = append(list.Games, gameView(ctx, g))
	}
	return list
}

func leaderboardView(entries []model.LeaderboardEntry) Leaderboard {
	board := Leaderboard{Entries: make([]LeaderboardRow, 0, len(entries))}
	for i, e := range entries {
		board.Entries = append(board.Entries, LeaderboardRow{
			Rank:        i + 1,
			PlayerID:    string(e.PlayerID),
			Username:    e.Username,
			GamesPlayed: e.GamesPlayed,
			GamesWon:    e.GamesWon,
			WinRate:     e.WinRate,
		})
	}
	return board
}

func playerStatsView(summary *model.PlayerSummary) PlayerStats {
	stats := PlayerStats{
		Player: Player{
			ID:            string(summary.PlayerID),
			Username:      summary.Username,
			GamesPlayed:   summary.GamesPlayed,
			GamesWon:      summary.GamesWon,
			CurrentStreak: summary.CurrentStreak,
			LongestStreak: summary.LongestStreak,
			WinRate:       summary.WinRate,
		},
		FavoriteColor:   string(summary.Colors.FavoriteColor),
		FavoritePercent: summary.Colors.FavoritePercent,
		BestColor:       string(summary.Colors.BestColor),
	}

	for _, c := range summary.Colors.Counts {
		stats.Colors = append(stats.Colors, ColorRow{
			Color:  string(c.Color),
			Played: c.Played,
			Won:    c.Won,
		})
	}

	if summary.Durations != nil {
		stats.Durations = &DurationRow{
			ShortestMinutes: summary.Durations.ShortestMinutes,
			LongestMinutes:  summary.Durations.LongestMinutes,
			AverageMinutes:  summary.Durations.AverageMinutes,
		}
	}

	for _, g := range summary.RecentGames {
		result := "lost"
		if g.Won {
			result = "won"
		}
		if !g.IsFinished {
			result = "in progress"
		}
		stats.RecentGames = append(stats.RecentGames, RecentGameRow{
			GameID:    string(g.GameID),
			StartTime: g.StartTime.Format(timeFormat),
			Color:     string(g.Color),
			Result:    result,
		})
	}

	return stats
}

func streakRowView(leader *model.StreakLeader) *StreakRow {
	if leader == nil {
		return nil
	}
	return &StreakRow{
		PlayerID: string(leader.PlayerID),
		Username: leader.Username,
		Streak:   leader.Streak,
	}
}

func recentWinnersView(winners []model.RecentWinner) RecentWinners {
	view := RecentWinners{Winners: make([]WinnerRow, 0, len(winners))}
	for _, w := range winners {
		view.Winners = append(view.Winners, WinnerRow{
			GameID:          string(w.GameID),
			PlayerID:        string(w.PlayerID),
			Username:        w.Username,
			Players:         w.Players,
			FinishedAt:      w.FinishedAt.Format(timeFormat),
			DurationMinutes: w.DurationMinutes,
		})
	}
	return view
}
