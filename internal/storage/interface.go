package storage

import (
	"context"

	"github.com/mcoot/gamenight-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// ListGames returns the full game log in chronological order (start time,
// then ID). The derivation engine folds the whole log on every query and
// depends on that order being stable. Games are never deleted.
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
}
