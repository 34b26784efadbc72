package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamenight-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "gamenight.json")

	storage, err := New(s.path)
	s.Require().NoError(err)
	s.storage = storage
	s.ctx = context.Background()
}

func (s *StorageSuite) reopen() *Storage {
	storage, err := New(s.path)
	s.Require().NoError(err)
	return storage
}

func (s *StorageSuite) TestMissingFileIsEmptyStore() {
	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Empty(players)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestCorruptFileFailsToOpen() {
	s.Require().NoError(os.WriteFile(s.path, []byte("not json"), 0600))

	_, err := New(s.path)
	s.Error(err)
}

func (s *StorageSuite) TestPlayersSurviveReopen() {
	player := &model.Player{
		ID:        "player-1",
		Username:  "Alice",
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	reopened := s.reopen()
	retrieved, err := reopened.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Username)
	s.True(player.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGamesSurviveReopen() {
	start := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Minute)
	game := &model.Game{
		ID:        "game-1",
		StartTime: start,
		EndTime:   &end,
		Players: []model.Seat{
			{PlayerID: "player-1", Color: model.ColorRed},
			{PlayerID: "player-2", Color: model.ColorBlue},
			{PlayerID: "player-3", Color: model.ColorWhite},
		},
		WinnerID:   "player-1",
		IsFinished: true,
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	reopened := s.reopen()
	retrieved, err := reopened.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.Players, retrieved.Players)
	s.Equal(model.PlayerID("player-1"), retrieved.WinnerID)
	s.Require().NotNil(retrieved.EndTime)
	s.True(end.Equal(*retrieved.EndTime))
}

func (s *StorageSuite) TestDeletePlayerPersists() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1"}))
	s.Require().NoError(s.storage.DeletePlayer(s.ctx, "player-1"))

	reopened := s.reopen()
	_, err := reopened.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestListGamesChronological() {
	base := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game-2", StartTime: base.Add(time.Hour)}))
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{ID: "game-1", StartTime: base}))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("game-1"), games[0].ID)
	s.Equal(model.GameID("game-2"), games[1].ID)
}

func (s *StorageSuite) TestNoLeftoverTempFile() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: "player-1"}))

	_, err := os.Stat(s.path)
	s.Require().NoError(err)

	_, err = os.Stat(s.path + ".tmp")
	s.True(os.IsNotExist(err))
}

func (s *StorageSuite) TestCreatesParentDirectory() {
	nested := filepath.Join(s.T().TempDir(), "deep", "dir", "gamenight.json")
	storage, err := New(nested)
	s.Require().NoError(err)

	s.Require().NoError(storage.SavePlayer(s.ctx, &model.Player{ID: "player-1"}))

	_, err = os.Stat(nested)
	s.Require().NoError(err)
}
