package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/gamenight-go/internal/dependencies/mocks"
	"github.com/mcoot/gamenight-go/internal/model"
	"github.com/mcoot/gamenight-go/internal/storage/memory"
	"github.com/mcoot/gamenight-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	ids     *mocks.MockIDGenerator
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDGenerator()
	s.random = mocks.NewMockRandom()
	s.service = NewService(testutil.NopLogger(), s.storage, s.clock, s.ids, s.random)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestAddPlayerSucceeds() {
	s.ids.QueueID("p-1")

	player, err := s.service.AddPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	s.Equal(model.PlayerID("p-1"), player.ID)
	s.Equal("alice", player.Username)
	s.False(player.IsFavorite)
	s.Equal(0, player.GamesPlayed)
	s.Equal(s.clock.Now(), player.CreatedAt)

	retrieved, err := s.service.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
}

func (s *ServiceSuite) TestAddPlayerGeneratesNameWhenEmpty() {
	s.random.QueueString("XK42")

	player, err := s.service.AddPlayer(s.ctx, "   ")
	s.Require().NoError(err)
	s.Equal("Player-XK42", player.Username)
}

func (s *ServiceSuite) TestRenamePlayer() {
	s.ids.QueueID("p-1")
	player, err := s.service.AddPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	renamed, err := s.service.RenamePlayer(s.ctx, player.ID, "alicia")
	s.Require().NoError(err)
	s.Equal("alicia", renamed.Username)

	retrieved, err := s.service.GetPlayer(s.ctx, player.ID)
	s.Require().NoError(err)
	s.Equal("alicia", retrieved.Username)
}

func (s *ServiceSuite) TestRenamePlayerRejectsEmptyName() {
	s.ids.QueueID("p-1")
	player, err := s.service.AddPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.service.RenamePlayer(s.ctx, player.ID, "  ")
	s.ErrorIs(err, model.ErrUsernameEmpty)
}

func (s *ServiceSuite) TestRenamePlayerFailsWhenMissing() {
	_, err := s.service.RenamePlayer(s.ctx, "nobody", "name")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeletePlayer() {
	player, err := s.service.AddPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	err = s.service.DeletePlayer(s.ctx, player.ID)
	s.Require().NoError(err)

	_, err = s.service.GetPlayer(s.ctx, player.ID)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestDeletePlayerFailsWhenMissing() {
	err := s.service.DeletePlayer(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestToggleFavorite() {
	player, err := s.service.AddPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	toggled, err := s.service.ToggleFavorite(s.ctx, player.ID)
	s.Require().NoError(err)
	s.True(toggled.IsFavorite)

	toggled, err = s.service.ToggleFavorite(s.ctx, player.ID)
	s.Require().NoError(err)
	s.False(toggled.IsFavorite)
}

func (s *ServiceSuite) TestListPlayersInCreationOrder() {
	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := s.service.AddPlayer(s.ctx, name)
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
	}

	players, err := s.service.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal("alice", players[0].Username)
	s.Equal("bob", players[1].Username)
	s.Equal("carol", players[2].Username)
}

func (s *ServiceSuite) TestSearchPlayersMatchesCaseInsensitively() {
	for _, name := range []string{"Alice", "Malice", "Bob"} {
		_, err := s.service.AddPlayer(s.ctx, name)
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
	}

	matches, err := s.service.SearchPlayers(s.ctx, "ALIce")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal("Alice", matches[0].Username)
	s.Equal("Malice", matches[1].Username)
}

func (s *ServiceSuite) TestSearchPlayersRanksFavoritesFirst() {
	var bob *model.Player
	for _, name := range []string{"alice", "bob", "carol"} {
		player, err := s.service.AddPlayer(s.ctx, name)
		s.Require().NoError(err)
		s.clock.Advance(time.Minute)
		if name == "bob" {
			bob = player
		}
	}

	_, err := s.service.ToggleFavorite(s.ctx, bob.ID)
	s.Require().NoError(err)

	matches, err := s.service.SearchPlayers(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(matches, 3)
	s.Equal("bob", matches[0].Username)
	s.Equal("alice", matches[1].Username)
	s.Equal("carol", matches[2].Username)
}

func (s *ServiceSuite) TestResolveUsername() {
	player, err := s.service.AddPlayer(s.ctx, "alice")
	s.Require().NoError(err)

	s.Equal("alice", s.service.ResolveUsername(s.ctx, player.ID))
	s.Equal(model.UnknownPlayerName, s.service.ResolveUsername(s.ctx, "ghost"))
}
