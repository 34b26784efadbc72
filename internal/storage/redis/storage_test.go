package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamenight-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		Username:  "Alice",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Username, retrieved.Username)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestSavePlayerOverwrites() {
	player := &model.Player{ID: "player-1", Username: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	player.Username = "Alicia"
	player.GamesWon = 3
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("Alicia", retrieved.Username)
	s.Equal(3, retrieved.GamesWon)
}

func (s *StorageSuite) TestListPlayersInCreationOrder() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	// Saved out of creation order on purpose
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{
		ID: "player-2", Username: "Bob", CreatedAt: base.Add(time.Hour),
	}))
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{
		ID: "player-1", Username: "Alice", CreatedAt: base,
	}))

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("player-1"), players[0].ID)
	s.Equal(model.PlayerID("player-2"), players[1].ID)
}

func (s *StorageSuite) TestListPlayersEmpty() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", Username: "Alice"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)
}

// Game tests

func (s *StorageSuite) seats() []model.Seat {
	return []model.Seat{
		{PlayerID: "player-1", Color: model.ColorRed},
		{PlayerID: "player-2", Color: model.ColorBlue},
		{PlayerID: "player-3", Color: model.ColorWhite},
	}
}

func (s *StorageSuite) TestSaveAndGetGame() {
	start := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)
	game := &model.Game{
		ID:         "game-1",
		StartTime:  start,
		EndTime:    &end,
		Players:    s.seats(),
		WinnerID:   "player-1",
		IsFinished: true,
	}

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.Players, retrieved.Players)
	s.Equal(game.WinnerID, retrieved.WinnerID)
	s.True(retrieved.IsFinished)
	s.Require().NotNil(retrieved.EndTime)
	s.True(end.Equal(*retrieved.EndTime))
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestListGamesChronological() {
	base := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	// Saved newest first; the listing must come back oldest first
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{
		ID: "game-2", StartTime: base.Add(time.Hour), Players: s.seats(),
	}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{
		ID: "game-1", StartTime: base, Players: s.seats(),
	}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("game-1"), games[0].ID)
	s.Equal(model.GameID("game-2"), games[1].ID)
}

func (s *StorageSuite) TestSaveGameKeepsIndexPosition() {
	base := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	game := &model.Game{ID: "game-1", StartTime: base, Players: s.seats()}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// Re-saving with an outcome must not duplicate the index entry
	end := base.Add(time.Hour)
	game.EndTime = &end
	game.WinnerID = "player-1"
	game.IsFinished = true
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.True(games[0].IsFinished)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}
