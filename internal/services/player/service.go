package player

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/mcoot/gamenight-go/internal/dependencies/clock"
	"github.com/mcoot/gamenight-go/internal/dependencies/identity"
	"github.com/mcoot/gamenight-go/internal/dependencies/random"
	"github.com/mcoot/gamenight-go/internal/model"
	"github.com/mcoot/gamenight-go/internal/storage"
)

const (
	// generatedNameSuffixLength is the random suffix on auto-generated names
	generatedNameSuffixLength = 4
	// generatedNameAlphabet avoids confusable characters
	generatedNameAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Service manages the player roster
type Service struct {
	logger  *slog.Logger
	storage storage.Storage
	clock   clock.Clock
	ids     identity.Generator
	random  random.Random
}

// NewService creates a new player Service
func NewService(
	logger *slog.Logger,
	storage storage.Storage,
	clock clock.Clock,
	ids identity.Generator,
	random random.Random,
) *Service {
	return &Service{
		logger:  logger,
		storage: storage,
		clock:   clock,
		ids:     ids,
		random:  random,
	}
}

// AddPlayer creates a new player. An empty username gets a generated one.
func (s *Service) AddPlayer(ctx context.Context, username string) (*model.Player, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = "Player-" + s.random.String(generatedNameSuffixLength, generatedNameAlphabet)
	}

	player := &model.Player{
		ID:        model.PlayerID(s.ids.NewID()),
		Username:  username,
		CreatedAt: s.clock.Now(),
	}

	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("username", player.Username))

	return player, nil
}

// RenamePlayer changes a player's username. Unlike AddPlayer, an empty name
// is rejected rather than generated.
func (s *Service) RenamePlayer(ctx context.Context, playerID model.PlayerID, username string) (*model.Player, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, model.ErrUsernameEmpty
	}

	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Username = username
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player renamed",
		slog.String("player_id", string(player.ID)),
		slog.String("username", player.Username))

	return player, nil
}

// DeletePlayer removes a player from the roster. Games they sat in are left
// untouched; readers resolve the dangling reference to a placeholder name.
func (s *Service) DeletePlayer(ctx context.Context, playerID model.PlayerID) error {
	if _, err := s.storage.GetPlayer(ctx, playerID); err != nil {
		return err
	}

	if err := s.storage.DeletePlayer(ctx, playerID); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(playerID)))
	return nil
}

// ToggleFavorite flips a player's favorite flag and returns the new state
func (s *Service) ToggleFavorite(ctx context.Context, playerID model.PlayerID) (*model.Player, error) {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.IsFavorite = !player.IsFavorite
	if err := s.storage.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	return player, nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, playerID model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, playerID)
}

// ListPlayers returns all players in creation order
func (s *Service) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	return s.storage.ListPlayers(ctx)
}

// SearchPlayers returns players whose username contains the query,
// case-insensitively. Favorites rank before non-favorites; within each
// group the creation order is kept. An empty query matches everyone.
func (s *Service) SearchPlayers(ctx context.Context, query string) ([]*model.Player, error) {
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))

	matches := make([]*model.Player, 0, len(players))
	for _, player := range players {
		if query == "" || strings.Contains(strings.ToLower(player.Username), query) {
			matches = append(matches, player)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].IsFavorite && !matches[j].IsFavorite
	})

	return matches, nil
}

// ResolveUsername returns the username for an ID, or a placeholder when the
// player has been deleted
func (s *Service) ResolveUsername(ctx context.Context, playerID model.PlayerID) string {
	player, err := s.storage.GetPlayer(ctx, playerID)
	if err != nil {
		return model.UnknownPlayerName
	}
	return player.Username
}

// Interface for dependency injection
type ServiceInterface interface {
	AddPlayer(ctx context.Context, username string) (*model.Player, error)
	RenamePlayer(ctx context.Context, playerID model.PlayerID, username string) (*model.Player, error)
	DeletePlayer(ctx context.Context, playerID model.PlayerID) error
	ToggleFavorite(ctx context.Context, playerID model.PlayerID) (*model.Player, error)
	GetPlayer(ctx context.Context, playerID model.PlayerID) (*model.Player, error)
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	SearchPlayers(ctx context.Context, query string) ([]*model.Player, error)
	ResolveUsername(ctx context.Context, playerID model.PlayerID) string
}

var _ ServiceInterface = (*Service)(nil)
