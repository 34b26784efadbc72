package game

import (
	"context"
	"log/slog"

	"github.com/mcoot/gamenight-go/internal/dependencies/clock"
	"github.com/mcoot/gamenight-go/internal/dependencies/identity"
	"github.com/mcoot/gamenight-go/internal/model"
	"github.com/mcoot/gamenight-go/internal/services/stats"
	"github.com/mcoot/gamenight-go/internal/storage"
)

// Controller manages the game log: starting games, recording outcomes, and
// correcting them after the fact. Every mutation that changes an outcome
// rebuilds the players' cached counters from the full log, so a corrected
// winner never leaves a stale streak behind.
type Controller struct {
	logger  *slog.Logger
	storage storage.Storage
	clock   clock.Clock
	ids     identity.Generator
}

// NewController creates a new game Controller
func NewController(
	logger *slog.Logger,
	storage storage.Storage,
	clock clock.Clock,
	ids identity.Generator,
) *Controller {
	return &Controller{
		logger:  logger,
		storage: storage,
		clock:   clock,
		ids:     ids,
	}
}

// CreateGame starts a new game with the given seating. The roster must hold
// at least the minimum player count, every seat must reference an existing
// player, and no player or color may appear twice.
func (c *Controller) CreateGame(ctx context.Context, seats []model.Seat) (*model.Game, error) {
	if len(seats) < model.MinRosterSize {
		return nil, model.ErrRosterTooSmall
	}

	seenPlayers := make(map[model.PlayerID]bool, len(seats))
	seenColors := make(map[model.Color]bool, len(seats))
	for _, seat := range seats {
		if !seat.Color.IsValid() {
			return nil, model.ErrInvalidColor
		}
		if seenPlayers[seat.PlayerID] {
			return nil, model.ErrDuplicatePlayer
		}
		if seenColors[seat.Color] {
			return nil, model.ErrDuplicateColor
		}
		seenPlayers[seat.PlayerID] = true
		seenColors[seat.Color] = true

		if _, err := c.storage.GetPlayer(ctx, seat.PlayerID); err != nil {
			return nil, err
		}
	}

	game := &model.Game{
		ID:        model.GameID(c.ids.NewID()),
		StartTime: c.clock.Now(),
		Players:   append([]model.Seat{}, seats...),
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.Int("players", len(game.Players)))

	return game, nil
}

// FinishGame records a game's outcome: the winner, the end time, and the
// finished flag. The winner must be seated in the game.
func (c *Controller) FinishGame(ctx context.Context, gameID model.GameID, winnerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsFinished {
		return nil, model.ErrGameFinished
	}
	if !game.HasPlayer(winnerID) {
		return nil, model.ErrWinnerNotInGame
	}

	now := c.clock.Now()
	game.EndTime = &now
	game.WinnerID = winnerID
	game.IsFinished = true

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	if err := c.refreshPlayerCounters(ctx); err != nil {
		return nil, err
	}

	c.logger.Info("game finished",
		slog.String("game_id", string(game.ID)),
		slog.String("winner_id", string(winnerID)))

	return game, nil
}

// EditWinner corrects the recorded winner of a finished game. An empty
// winner ID clears the result without reopening the game. Start and end
// times are untouched.
func (c *Controller) EditWinner(ctx context.Context, gameID model.GameID, winnerID model.PlayerID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsFinished {
		return nil, model.ErrGameNotFinished
	}
	if winnerID != "" && !game.HasPlayer(winnerID) {
		return nil, model.ErrWinnerNotInGame
	}

	game.WinnerID = winnerID

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	if err := c.refreshPlayerCounters(ctx); err != nil {
		return nil, err
	}

	c.logger.Info("game winner edited",
		slog.String("game_id", string(game.ID)),
		slog.String("winner_id", string(winnerID)))

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns the full log in chronological order
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// ListOpenGames returns the games still in progress, in chronological order
func (c *Controller) ListOpenGames(ctx context.Context) ([]*model.Game, error) {
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	open := make([]*model.Game, 0, len(games))
	for _, game := range games {
		if !game.IsFinished {
			open = append(open, game)
		}
	}
	return open, nil
}

// refreshPlayerCounters rebuilds every player's cached counters from the
// full log and persists the ones that changed
func (c *Controller) refreshPlayerCounters(ctx context.Context) error {
	players, err := c.storage.ListPlayers(ctx)
	if err != nil {
		return err
	}
	games, err := c.storage.ListGames(ctx)
	if err != nil {
		return err
	}

	before := make(map[model.PlayerID]model.Player, len(players))
	for _, player := range players {
		before[player.ID] = *player
	}

	stats.Recompute(players, games)

	for _, player := range players {
		prev := before[player.ID]
		if prev.GamesPlayed == player.GamesPlayed &&
			prev.GamesWon == player.GamesWon &&
			prev.CurrentWinStreak == player.CurrentWinStreak &&
			prev.LongestWinStreak == player.LongestWinStreak {
			continue
		}
		if err := c.storage.SavePlayer(ctx, player); err != nil {
			return err
		}
	}

	return nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, seats []model.Seat) (*model.Game, error)
	FinishGame(ctx context.Context, gameID model.GameID, winnerID model.PlayerID) (*model.Game, error)
	EditWinner(ctx context.Context, gameID model.GameID, winnerID model.PlayerID) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
	ListOpenGames(ctx context.Context) ([]*model.Game, error)
}

var _ ControllerInterface = (*Controller)(nil)
