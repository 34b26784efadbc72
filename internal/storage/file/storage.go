package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/mcoot/gamenight-go/internal/model"
	"github.com/mcoot/gamenight-go/internal/storage"
)

// Storage is a file-backed implementation of the storage interface. The
// entire state (both collections) is held in memory and serialized to a
// single JSON snapshot file after every write, the way the original
// client-local store persisted its data.
type Storage struct {
	mu   sync.RWMutex
	path string

	players map[model.PlayerID]*model.Player
	games   map[model.GameID]*model.Game
}

// snapshot is the on-disk layout: the two collections, nothing else
type snapshot struct {
	Players []*model.Player `json:"players"`
	Games   []*model.Game   `json:"games"`
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// New creates a file storage backed by the given snapshot path, loading any
// existing snapshot. A missing file is treated as an empty store.
func New(path string) (*Storage, error) {
	s := &Storage{
		path:    path,
		players: make(map[model.PlayerID]*model.Player),
		games:   make(map[model.GameID]*model.Game),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	for _, player := range snap.Players {
		s.players[player.ID] = player
	}
	for _, game := range snap.Games {
		s.games[game.ID] = game
	}

	return s, nil
}

// flush writes the full snapshot atomically (temp file + rename).
// Callers must hold the write lock.
func (s *Storage) flush() error {
	snap := snapshot{
		Players: make([]*model.Player, 0, len(s.players)),
		Games:   make([]*model.Game, 0, len(s.games)),
	}
	for _, player := range s.players {
		snap.Players = append(snap.Players, player)
	}
	for _, game := range s.games {
		snap.Games = append(snap.Games, game)
	}
	sort.Slice(snap.Players, func(i, j int) bool { return snap.Players[i].ID < snap.Players[j].ID })
	sort.Slice(snap.Games, func(i, j int) bool {
		if !snap.Games[i].StartTime.Equal(snap.Games[j].StartTime) {
			return snap.Games[i].StartTime.Before(snap.Games[j].StartTime)
		}
		return snap.Games[i].ID < snap.Games[j].ID
	})

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	return s.flush()
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, player := range s.players {
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool {
		if !players[i].CreatedAt.Equal(players[j].CreatedAt) {
			return players[i].CreatedAt.Before(players[j].CreatedAt)
		}
		return players[i].ID < players[j].ID
	})
	return players, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return s.flush()
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return s.flush()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool {
		if !games[i].StartTime.Equal(games[j].StartTime) {
			return games[i].StartTime.Before(games[j].StartTime)
		}
		return games[i].ID < games[j].ID
	})
	return games, nil
}
