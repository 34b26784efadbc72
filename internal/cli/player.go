package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/gamenight-go/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player roster commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerSearchCmd())
	cmd.AddCommand(newPlayerRenameCmd())
	cmd.AddCommand(newPlayerDeleteCmd())
	cmd.AddCommand(newPlayerFavoriteCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [username]",
		Short: "Add a player (generates a name if omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			username := ""
			if len(args) > 0 {
				username = args[0]
			}

			player, err := app.PlayerService.AddPlayer(cmd.Context(), username)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(playerView(player))
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := app.PlayerService.ListPlayers(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(playerListView(players))
			return nil
		},
	}
}

func newPlayerSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search players by name, favorites first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			players, err := app.PlayerService.SearchPlayers(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(playerListView(players))
			return nil
		},
	}
}

func newPlayerRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <player-id> <username>",
		Short: "Rename a player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.PlayerService.RenamePlayer(cmd.Context(), model.PlayerID(args[0]), args[1])
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(playerView(player))
			return nil
		},
	}
}

func newPlayerDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <player-id>",
		Short: "Delete a player (recorded games are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.PlayerService.DeletePlayer(cmd.Context(), model.PlayerID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Player deleted")
			return nil
		},
	}
}

func newPlayerFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <player-id>",
		Short: "Toggle a player's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := app.PlayerService.ToggleFavorite(cmd.Context(), model.PlayerID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(playerView(player))
			return nil
		},
	}
}
