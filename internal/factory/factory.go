package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/gamenight-go/internal/dependencies/clock"
	"github.com/mcoot/gamenight-go/internal/dependencies/identity"
	"github.com/mcoot/gamenight-go/internal/dependencies/random"
	"github.com/mcoot/gamenight-go/internal/services/game"
	"github.com/mcoot/gamenight-go/internal/services/player"
	"github.com/mcoot/gamenight-go/internal/services/stats"
	"github.com/mcoot/gamenight-go/internal/storage"
	filestorage "github.com/mcoot/gamenight-go/internal/storage/file"
	"github.com/mcoot/gamenight-go/internal/storage/memory"
	redisstorage "github.com/mcoot/gamenight-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    identity.Generator

	// Services
	PlayerService  *player.Service
	GameController *game.Controller
	StatsService   *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// DataFile is the snapshot path (required if StorageType is "file")
	DataFile string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		if cfg.DataFile == "" {
			return nil, errors.New("DataFile required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.DataFile)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), identity.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	ids identity.Generator,
	logger *slog.Logger,
) *App {
	playerService := player.NewService(logger, store, clk, ids, rnd)
	gameController := game.NewController(logger, store, clk, ids)
	statsService := stats.NewService(logger, store)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		IDs:            ids,
		PlayerService:  playerService,
		GameController: gameController,
		StatsService:   statsService,
	}
}

// Close releases storage resources for backends that hold connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
