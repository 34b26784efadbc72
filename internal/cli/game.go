package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/gamenight-go/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game log commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameFinishCmd())
	cmd.AddCommand(newGameEditWinnerCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameListCmd())

	return cmd
}

// parseSeat parses a "player-id=color" seat argument
func parseSeat(arg string) (model.Seat, error) {
	playerID, color, ok := strings.Cut(arg, "=")
	if !ok || playerID == "" || color == "" {
		return model.Seat{}, fmt.Errorf("invalid seat %q: expected player-id=color", arg)
	}
	return model.Seat{
		PlayerID: model.PlayerID(playerID),
		Color:    model.Color(strings.ToLower(color)),
	}, nil
}

func newGameStartCmd() *cobra.Command {
	var seatArgs []string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a game with the given seating",
		Long: `Start a game. Each --seat pairs a player with the color they play,
for example: gamenight game start --seat p1=red --seat p2=blue --seat p3=white`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seats := make([]model.Seat, 0, len(seatArgs))
			for _, arg := range seatArgs {
				seat, err := parseSeat(arg)
				if err != nil {
					return err
				}
				seats = append(seats, seat)
			}

			game, err := app.GameController.CreateGame(cmd.Context(), seats)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(gameView(cmd.Context(), game))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&seatArgs, "seat", nil, "Seat as player-id=color (repeatable, required)")
	_ = cmd.MarkFlagRequired("seat")

	return cmd
}

func newGameFinishCmd() *cobra.Command {
	var winner string

	cmd := &cobra.Command{
		Use:   "finish <game-id>",
		Short: "Finish a game and record the winner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.GameController.FinishGame(cmd.Context(), model.GameID(args[0]), model.PlayerID(winner))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(gameView(cmd.Context(), game))
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Winning player's ID (required)")
	_ = cmd.MarkFlagRequired("winner")

	return cmd
}

func newGameEditWinnerCmd() *cobra.Command {
	var winner string
	var clear bool

	cmd := &cobra.Command{
		Use:   "edit-winner <game-id>",
		Short: "Correct the winner of a finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if winner == "" && !clear {
				return fmt.Errorf("either --winner or --clear is required")
			}
			if winner != "" && clear {
				return fmt.Errorf("--winner and --clear are mutually exclusive")
			}

			game, err := app.GameController.EditWinner(cmd.Context(), model.GameID(args[0]), model.PlayerID(winner))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(gameView(cmd.Context(), game))
			return nil
		},
	}

	cmd.Flags().StringVar(&winner, "winner", "", "Corrected winner's player ID")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the recorded winner")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a single game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := app.GameController.GetGame(cmd.Context(), model.GameID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(gameView(cmd.Context(), game))
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	var openOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded games in chronological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var games []*model.Game
			var err error
			if openOnly {
				games, err = app.GameController.ListOpenGames(cmd.Context())
			} else {
				games, err = app.GameController.ListGames(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(gameListView(cmd.Context(), games))
			return nil
		},
	}

	cmd.Flags().BoolVar(&openOnly, "open", false, "Only games still in progress")

	return cmd
}
