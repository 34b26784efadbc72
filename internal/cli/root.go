package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/gamenight-go/internal/factory"
	redisstorage "github.com/mcoot/gamenight-go/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "gamenight",
		Short: "Track board game nights and player statistics",
		Long: `gamenight records the games your group plays: who sat where, who won,
and how long it took. It derives leaderboards, win streaks, color records
and game duration statistics from the log.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(cmd.Flags()); err != nil {
				return err
			}

			built, err := buildApp(cfg)
			if err != nil {
				return err
			}
			app = built
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app != nil {
				return app.Close()
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, file, redis (env: GAMENIGHT_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.DataFile, "data-file", cfg.DataFile, "Snapshot path for file storage (env: GAMENIGHT_DATA_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for redis storage (env: GAMENIGHT_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// buildApp wires the application for the configured storage backend
func buildApp(cfg *Config) (*factory.App, error) {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		DataFile:    cfg.DataFile,
	}

	if cfg.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		if cfg.RedisURL != "" {
			redisCfg.URL = cfg.RedisURL
		}
		factoryCfg.RedisConfig = &redisCfg
	}

	return factory.New(factoryCfg)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
