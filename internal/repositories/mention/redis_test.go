package mention

import (
	"context"
	"testing"

	"github.com/KirkDiggler/starwatch/internal/models"
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

func (s *RedisRepositoryTestSuite) TestAddListRemove() {
	added, err := s.repo.Add(s.ctx, &ChangeInput{Kind: models.MentionLiveOn, TargetID: "chan", UserID: "200"})
	s.Require().NoError(err)
	s.True(added)

	added, err = s.repo.Add(s.ctx, &ChangeInput{Kind: models.MentionLiveOn, TargetID: "chan", UserID: "100"})
	s.Require().NoError(err)
	s.True(added)

	added, err = s.repo.Add(s.ctx, &ChangeInput{Kind: models.MentionLiveOn, TargetID: "chan", UserID: "100"})
	s.Require().NoError(err)
	s.False(added)

	users, err := s.repo.List(s.ctx, &ListInput{Kind: models.MentionLiveOn, TargetID: "chan"})
	s.Require().NoError(err)
	s.Equal([]string{"100", "200"}, users)

	// Lists are kept per kind
	posts, err := s.repo.List(s.ctx, &ListInput{Kind: models.MentionPost, TargetID: "chan"})
	s.Require().NoError(err)
	s.Empty(posts)

	removed, err := s.repo.Remove(s.ctx, &ChangeInput{Kind: models.MentionLiveOn, TargetID: "chan", UserID: "200"})
	s.Require().NoError(err)
	s.True(removed)

	removed, err = s.repo.Remove(s.ctx, &ChangeInput{Kind: models.MentionLiveOn, TargetID: "chan", UserID: "200"})
	s.Require().NoError(err)
	s.False(removed)
}

func (s *RedisRepositoryTestSuite) TestRejectsUnknownKind() {
	_, err := s.repo.Add(s.ctx, &ChangeInput{Kind: "other", TargetID: "chan", UserID: "1"})
	s.Error(err)
}
