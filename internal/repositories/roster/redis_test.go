package roster

import (
	"context"
	"testing"

	"github.com/KitchAIv1/statjam-sub000/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) save(p models.Player) {
	s.Require().NoError(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: &p}))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetPlayer() {
	s.save(models.Player{ID: "p1", TeamID: "hawks", Name: "Ana", JerseyNumber: "7"})

	player, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{TeamID: "hawks", Ref: models.PlayerRef{ID: "p1"}})
	s.Require().NoError(err)
	s.Equal("Ana", player.Name)
	s.Equal("7", player.JerseyNumber)
}

func (s *RedisRepositoryTestSuite) TestCustomAndRegularPlayersAreSeparate() {
	s.save(models.Player{ID: "p1", TeamID: "hawks", Name: "Regular"})
	s.save(models.Player{ID: "p1", TeamID: "hawks", Name: "Custom", Custom: true})

	regular, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{TeamID: "hawks", Ref: models.PlayerRef{ID: "p1"}})
	s.Require().NoError(err)
	s.Equal("Regular", regular.Name)

	custom, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{TeamID: "hawks", Ref: models.PlayerRef{ID: "p1", Custom: true}})
	s.Require().NoError(err)
	s.Equal("Custom", custom.Name)
	s.True(custom.Custom)
}

func (s *RedisRepositoryTestSuite) TestGetTeamPlayersOrder() {
	s.save(models.Player{ID: "c", TeamID: "hawks", Name: "Cleo", JerseyNumber: "23"})
	s.save(models.Player{ID: "a", TeamID: "hawks", Name: "Ana", JerseyNumber: "7"})
	s.save(models.Player{ID: "z", TeamID: "hawks", Name: "Zed"})
	s.save(models.Player{ID: "b", TeamID: "hawks", Name: "Bo", JerseyNumber: "00x"})
	s.save(models.Player{ID: "o", TeamID: "owls", Name: "Other", JerseyNumber: "1"})

	output, err := s.repo.GetTeamPlayers(s.ctx, &GetTeamPlayersInput{TeamID: "hawks"})
	s.Require().NoError(err)

	var ids []string
	for _, p := range output.Players {
		ids = append(ids, p.ID)
	}
	s.Equal([]string{"a", "c", "z", "b"}, ids)
}

func (s *RedisRepositoryTestSuite) TestEmptyTeam() {
	output, err := s.repo.GetTeamPlayers(s.ctx, &GetTeamPlayersInput{TeamID: "nobody"})
	s.Require().NoError(err)
	s.Empty(output.Players)
}

func (s *RedisRepositoryTestSuite) TestRemovePlayer() {
	s.save(models.Player{ID: "p1", TeamID: "hawks", Name: "Ana"})

	ref := models.PlayerRef{ID: "p1"}
	s.Require().NoError(s.repo.RemovePlayer(s.ctx, &RemovePlayerInput{TeamID: "hawks", Ref: ref}))

	_, err := s.repo.GetPlayer(s.ctx, &GetPlayerInput{TeamID: "hawks", Ref: ref})
	s.ErrorIs(err, ErrPlayerNotFound)
	s.ErrorIs(s.repo.RemovePlayer(s.ctx, &RemovePlayerInput{TeamID: "hawks", Ref: ref}), ErrPlayerNotFound)
}

func (s *RedisRepositoryTestSuite) TestInvalidInput() {
	s.Error(s.repo.SavePlayer(s.ctx, &SavePlayerInput{Player: &models.Player{ID: "p1"}}))
	_, err := s.repo.GetTeamPlayers(s.ctx, &GetTeamPlayersInput{})
	s.Error(err)
}
