package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/gamenight-go/internal/model"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Derived statistics commands",
	}

	cmd.AddCommand(newStatsLeaderboardCmd())
	cmd.AddCommand(newStatsPlayerCmd())
	cmd.AddCommand(newStatsStreaksCmd())
	cmd.AddCommand(newStatsRecentCmd())

	return cmd
}

func newStatsLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Rank players by win rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.StatsService.Leaderboard(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(leaderboardView(entries))
			return nil
		},
	}
}

func newStatsPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "player <player-id>",
		Short: "Show a player's full statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.StatsService.PlayerSummary(cmd.Context(), model.PlayerID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(playerStatsView(summary))
			return nil
		},
	}
}

func newStatsStreaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streaks",
		Short: "Show the active and all-time win streak leaders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current, longest, err := app.StatsService.StreakLeaders(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(Streaks{
				Current: streakRowView(current),
				Longest: streakRowView(longest),
			})
			return nil
		},
	}
}

func newStatsRecentCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recent winners, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			winners, err := app.StatsService.RecentWinners(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(recentWinnersView(winners))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 5, "Maximum number of winners to show")

	return cmd
}
