package stats

import (
	"math"
	"sort"

	"github.com/mcoot/gamenight-go/internal/model"
)

// The functions in this file are pure folds over the game log. They take the
// log in chronological order (as returned by storage.ListGames) and never
// mutate their inputs, so calling them twice on the same snapshot always
// yields the same result.

// CurrentStreak returns the player's active run of consecutive wins.
//
// Walking the finished games newest-first: wins count, the first game the
// player sat in but lost ends the run, and games the player did not sit in
// are skipped without breaking it. Open games are ignored entirely.
func CurrentStreak(games []*model.Game, playerID model.PlayerID) int {
	streak := 0
	for i := len(games) - 1; i >= 0; i-- {
		game := games[i]
		if !game.IsFinished || !game.HasPlayer(playerID) {
			continue
		}
		if game.WinnerID != playerID {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive wins the player has
// ever held. A participated-and-lost game resets the running count; games
// the player did not sit in do not.
func LongestStreak(games []*model.Game, playerID model.PlayerID) int {
	longest := 0
	current := 0
	for _, game := range games {
		if !game.IsFinished || !game.HasPlayer(playerID) {
			continue
		}
		if game.WinnerID == playerID {
			current++
			if current > longest {
				longest = current
			}
		} else {
			current = 0
		}
	}
	return longest
}

// WinRate returns won/played in [0, 1], defined as 0 when played is 0
func WinRate(played, won int) float64 {
	if played <= 0 {
		return 0
	}
	return float64(won) / float64(played)
}

// RankPlayers orders players for the leaderboard: descending win rate,
// stable for equal rates (the ordering is non-strict; ties keep their
// incoming order).
func RankPlayers(players []*model.Player) []model.LeaderboardEntry {
	entries := make([]model.LeaderboardEntry, 0, len(players))
	for _, player := range players {
		entries = append(entries, model.LeaderboardEntry{
			PlayerID:    player.ID,
			Username:    player.Username,
			GamesPlayed: player.GamesPlayed,
			GamesWon:    player.GamesWon,
			WinRate:     player.WinRate(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WinRate > entries[j].WinRate
	})

	return entries
}

// ColorStatistics tallies the player's games and wins per seat color.
// Favorite is the most-played color and best the most-won; ties go to the
// color first seen in the log, so results are deterministic for a fixed
// log order. Wins are only counted from finished games; participation
// counts every game the player sat in.
func ColorStatistics(games []*model.Game, playerID model.PlayerID) model.ColorStatistics {
	counts := make(map[model.Color]*model.ColorCount)
	var order []model.Color
	total := 0

	for _, game := range games {
		seat, ok := game.SeatOf(playerID)
		if !ok {
			continue
		}
		count, seen := counts[seat.Color]
		if !seen {
			count = &model.ColorCount{Color: seat.Color}
			counts[seat.Color] = count
			order = append(order, seat.Color)
		}
		count.Played++
		total++
		if game.IsFinished && game.WinnerID == playerID {
			count.Won++
		}
	}

	result := model.ColorStatistics{}
	for _, color := range order {
		result.Counts = append(result.Counts, *counts[color])
	}

	for _, color := range order {
		count := counts[color]
		if result.FavoriteColor == "" || count.Played > counts[result.FavoriteColor].Played {
			result.FavoriteColor = color
		}
		if count.Won > 0 && (result.BestColor == "" || count.Won > counts[result.BestColor].Won) {
			result.BestColor = color
		}
	}

	if result.FavoriteColor != "" && total > 0 {
		played := counts[result.FavoriteColor].Played
		result.FavoritePercent = int(math.Round(100 * float64(played) / float64(total)))
	}

	return result
}

// DurationStatistics summarizes the player's won games that have both
// timestamps, in whole minutes. Returns nil when no game qualifies, so
// callers can tell "no data" apart from a zero-minute game.
func DurationStatistics(games []*model.Game, playerID model.PlayerID) *model.DurationStatistics {
	var minutes []int
	for _, game := range games {
		if !game.IsFinished || game.WinnerID != playerID {
			continue
		}
		elapsed, ok := game.Duration()
		if !ok {
			continue
		}
		minutes = append(minutes, int(math.Round(elapsed.Minutes())))
	}

	if len(minutes) == 0 {
		return nil
	}

	result := &model.DurationStatistics{
		ShortestMinutes: minutes[0],
		LongestMinutes:  minutes[0],
	}
	sum := 0
	for _, m := range minutes {
		if m < result.ShortestMinutes {
			result.ShortestMinutes = m
		}
		if m > result.LongestMinutes {
			result.LongestMinutes = m
		}
		sum += m
	}
	result.AverageMinutes = int(math.Round(float64(sum) / float64(len(minutes))))

	return result
}

// GameResults projects the log onto a single player's perspective,
// chronological order, one entry per game the player sat in
func GameResults(games []*model.Game, playerID model.PlayerID) []model.GameResult {
	var results []model.GameResult
	for _, game := range games {
		seat, ok := game.SeatOf(playerID)
		if !ok {
			continue
		}
		results = append(results, model.GameResult{
			GameID:     game.ID,
			StartTime:  game.StartTime,
			Won:        game.IsFinished && game.WinnerID == playerID,
			Color:      seat.Color,
			IsFinished: game.IsFinished,
		})
	}
	return results
}

// Recompute rebuilds every player's cached counters from the full log.
// GamesPlayed counts finished games only, so an open game changes nothing
// until it is finished.
func Recompute(players []*model.Player, games []*model.Game) {
	for _, player := range players {
		played, won, current, longest := 0, 0, 0, 0
		for _, game := range games {
			if !game.IsFinished || !game.HasPlayer(player.ID) {
				continue
			}
			played++
			if game.WinnerID == player.ID {
				won++
				current++
				if current > longest {
					longest = current
				}
			} else {
				current = 0
			}
		}
		player.GamesPlayed = played
		player.GamesWon = won
		player.CurrentWinStreak = current
		player.LongestWinStreak = longest
	}
}
