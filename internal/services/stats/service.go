package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/mcoot/gamenight-go/internal/model"
	"github.com/mcoot/gamenight-go/internal/storage"
)

const (
	// streakLeaderThreshold is the minimum streak worth calling out
	streakLeaderThreshold = 2

	// recentGamesLimit caps the per-player game history in summaries
	recentGamesLimit = 10
)

// Service answers derived-statistics queries over the stored log
type Service struct {
	logger *slog.Logger
	store  storage.Storage
}

func NewService(logger *slog.Logger, store storage.Storage) *Service {
	return &Service{
		logger: logger,
		store:  store,
	}
}

// Leaderboard returns every player ranked by win rate
func (s *Service) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return RankPlayers(players), nil
}

// PlayerSummary returns the full derived view of one player: counters,
// streaks, color and duration statistics, and their most recent games
// newest-first.
func (s *Service) PlayerSummary(ctx context.Context, playerID model.PlayerID) (*model.PlayerSummary, error) {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	games, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	summary := &model.PlayerSummary{
		PlayerID:      player.ID,
		Username:      player.Username,
		GamesPlayed:   player.GamesPlayed,
		GamesWon:      player.GamesWon,
		WinRate:       player.WinRate(),
		CurrentStreak: CurrentStreak(games, playerID),
		LongestStreak: LongestStreak(games, playerID),
		Colors:        ColorStatistics(games, playerID),
		Durations:     DurationStatistics(games, playerID),
	}

	results := GameResults(games, playerID)
	limit := len(results)
	if limit > recentGamesLimit {
		limit = recentGamesLimit
	}
	summary.RecentGames = make([]model.GameResult, 0, limit)
	for i := len(results) - 1; i >= len(results)-limit; i-- {
		summary.RecentGames = append(summary.RecentGames, results[i])
	}

	return summary, nil
}

// StreakLeaders returns the holders of the best active and best all-time
// win streaks. A streak only counts as a record once it reaches the
// threshold, so either leader may be nil. Ties go to the earlier-created
// player.
func (s *Service) StreakLeaders(ctx context.Context) (current *model.StreakLeader, longest *model.StreakLeader, err error) {
	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list players: %w", err)
	}

	for _, player := range players {
		if player.CurrentWinStreak >= streakLeaderThreshold {
			if current == nil || player.CurrentWinStreak > current.Streak {
				current = &model.StreakLeader{
					PlayerID: player.ID,
					Username: player.Username,
					Streak:   player.CurrentWinStreak,
				}
			}
		}
		if player.LongestWinStreak >= streakLeaderThreshold {
			if longest == nil || player.LongestWinStreak > longest.Streak {
				longest = &model.StreakLeader{
					PlayerID: player.ID,
					Username: player.Username,
					Streak:   player.LongestWinStreak,
				}
			}
		}
	}

	return current, longest, nil
}

// RecentWinners returns up to limit finished games with a winner, newest
// first. Winners whose player record has since been deleted keep their
// entry under a placeholder name. A limit of zero or less yields an empty
// result.
func (s *Service) RecentWinners(ctx context.Context, limit int) ([]model.RecentWinner, error) {
	if limit < 0 {
		limit = 0
	}

	games, err := s.store.ListGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	players, err := s.store.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	names := make(map[model.PlayerID]string, len(players))
	for _, player := range players {
		names[player.ID] = player.Username
	}

	winners := make([]model.RecentWinner, 0, limit)
	for i := len(games) - 1; i >= 0 && len(winners) < limit; i-- {
		game := games[i]
		if !game.IsFinished || game.WinnerID == "" {
			continue
		}

		username, ok := names[game.WinnerID]
		if !ok {
			username = model.UnknownPlayerName
		}

		winner := model.RecentWinner{
			GameID:     game.ID,
			PlayerID:   game.WinnerID,
			Username:   username,
			Players:    len(game.Players),
			FinishedAt: game.StartTime,
		}
		if game.EndTime != nil {
			winner.FinishedAt = *game.EndTime
		}
		if elapsed, ok := game.Duration(); ok {
			minutes := int(math.Round(elapsed.Minutes()))
			winner.DurationMinutes = &minutes
		}
		winners = append(winners, winner)
	}

	return winners, nil
}
