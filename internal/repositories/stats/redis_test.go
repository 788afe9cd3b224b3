package stats

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
	roomID int64
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
	s.roomID = 22625025
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}

func (s *RedisRepositoryTestSuite) TestIncrRoomReturnsRunningTotal() {
	total, err := s.repo.IncrRoom(s.ctx, &IncrRoomInput{RoomID: s.roomID, Metric: models.MetricBoxProfit, Amount: 1.5})
	s.Require().NoError(err)
	s.InDelta(1.5, total, 0.0001)

	total, err = s.repo.IncrRoom(s.ctx, &IncrRoomInput{RoomID: s.roomID, Metric: models.MetricBoxProfit, Amount: -2})
	s.Require().NoError(err)
	s.InDelta(-0.5, total, 0.0001)

	value, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: s.roomID, Metric: models.MetricBoxProfit})
	s.Require().NoError(err)
	s.InDelta(-0.5, value, 0.0001)
}

func (s *RedisRepositoryTestSuite) TestGetRoomMissingIsZero() {
	value, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: s.roomID, Metric: models.MetricSC})
	s.Require().NoError(err)
	s.Zero(value)
}

func (s *RedisRepositoryTestSuite) TestRankAndCountUsers() {
	amounts := map[int64]float64{1: 5, 2: 9, 3: 1}
	for userID, amount := range amounts {
		_, err := s.repo.IncrUser(s.ctx, &IncrUserInput{RoomID: s.roomID, Metric: models.MetricDanmu, UserID: userID, Amount: amount})
		s.Require().NoError(err)
	}

	count, err := s.repo.CountUsers(s.ctx, &CountUsersInput{RoomID: s.roomID, Metric: models.MetricDanmu})
	s.Require().NoError(err)
	s.Equal(int64(3), count)

	top, err := s.repo.RankUsers(s.ctx, &RankUsersInput{RoomID: s.roomID, Metric: models.MetricDanmu, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(top.Entries, 2)
	s.Equal(int64(2), top.Entries[0].UserID)
	s.Equal(9.0, top.Entries[0].Value)
	s.Equal(int64(1), top.Entries[1].UserID)

	all, err := s.repo.RankUsers(s.ctx, &RankUsersInput{RoomID: s.roomID, Metric: models.MetricDanmu})
	s.Require().NoError(err)
	s.Len(all.Entries, 3)
}

func (s *RedisRepositoryTestSuite) TestSeriesSortedByTimestamp() {
	points := []struct {
		ts     int64
		amount float64
	}{
		{200, 1}, {100, 1}, {200, 2.5},
	}
	for _, p := range points {
		err := s.repo.AddTimePoint(s.ctx, &AddTimePointInput{RoomID: s.roomID, Series: models.SeriesGift, Timestamp: p.ts, Amount: p.amount})
		s.Require().NoError(err)
	}

	out, err := s.repo.GetSeries(s.ctx, &GetSeriesInput{RoomID: s.roomID, Series: models.SeriesGift})
	s.Require().NoError(err)
	s.Require().Len(out.Points, 2)
	s.Equal(int64(100), out.Points[0].Timestamp)
	s.InDelta(1.0, out.Points[0].Value, 0.0001)
	s.Equal(int64(200), out.Points[1].Timestamp)
	s.InDelta(3.5, out.Points[1].Value, 0.0001)
}

func (s *RedisRepositoryTestSuite) TestListsPreserveOrder() {
	for _, total := range []float64{1.5, -0.5, 3} {
		s.Require().NoError(s.repo.AppendBoxProfit(s.ctx, &AppendBoxProfitInput{RoomID: s.roomID, Total: total}))
	}
	for _, msg := range []string{"hello", "world"} {
		s.Require().NoError(s.repo.AppendChat(s.ctx, &AppendChatInput{RoomID: s.roomID, Content: msg}))
	}

	profits, err := s.repo.GetBoxProfits(s.ctx, &GetBoxProfitsInput{RoomID: s.roomID})
	s.Require().NoError(err)
	s.Equal([]float64{1.5, -0.5, 3}, profits)

	chat, err := s.repo.GetChat(s.ctx, &GetChatInput{RoomID: s.roomID})
	s.Require().NoError(err)
	s.Equal([]string{"hello", "world"}, chat)
}

func (s *RedisRepositoryTestSuite) TestArchiveAndResetClearsSessionAndKeepsTotals() {
	_, err := s.repo.IncrRoom(s.ctx, &IncrRoomInput{RoomID: s.roomID, Metric: models.MetricDanmu, Amount: 4})
	s.Require().NoError(err)
	_, err = s.repo.IncrUser(s.ctx, &IncrUserInput{RoomID: s.roomID, Metric: models.MetricDanmu, UserID: 7, Amount: 4})
	s.Require().NoError(err)
	s.Require().NoError(s.repo.AddTimePoint(s.ctx, &AddTimePointInput{RoomID: s.roomID, Series: models.SeriesDanmu, Timestamp: 1, Amount: 1}))
	s.Require().NoError(s.repo.AppendChat(s.ctx, &AppendChatInput{RoomID: s.roomID, Content: "hi"}))

	// Archive twice to check totals accumulate across sessions
	s.Require().NoError(s.repo.ArchiveAndReset(s.ctx, &ArchiveAndResetInput{RoomID: s.roomID}))

	_, err = s.repo.IncrRoom(s.ctx, &IncrRoomInput{RoomID: s.roomID, Metric: models.MetricDanmu, Amount: 2})
	s.Require().NoError(err)
	_, err = s.repo.IncrUser(s.ctx, &IncrUserInput{RoomID: s.roomID, Metric: models.MetricDanmu, UserID: 7, Amount: 2})
	s.Require().NoError(err)

	s.Require().NoError(s.repo.ArchiveAndReset(s.ctx, &ArchiveAndResetInput{RoomID: s.roomID}))

	value, err := s.repo.GetRoom(s.ctx, &GetRoomInput{RoomID: s.roomID, Metric: models.MetricDanmu})
	s.Require().NoError(err)
	s.Zero(value)

	count, err := s.repo.CountUsers(s.ctx, &CountUsersInput{RoomID: s.roomID, Metric: models.MetricDanmu})
	s.Require().NoError(err)
	s.Zero(count)

	series, err := s.repo.GetSeries(s.ctx, &GetSeriesInput{RoomID: s.roomID, Series: models.SeriesDanmu})
	s.Require().NoError(err)
	s.Empty(series.Points)

	chat, err := s.repo.GetChat(s.ctx, &GetChatInput{RoomID: s.roomID})
	s.Require().NoError(err)
	s.Empty(chat)

	total, err := s.client.Get(s.ctx, "total:room:22625025:danmu").Float64()
	s.Require().NoError(err)
	s.InDelta(6.0, total, 0.0001)

	userTotal, err := s.client.ZScore(s.ctx, "total:room:22625025:danmu:users", "7").Result()
	s.Require().NoError(err)
	s.InDelta(6.0, userTotal, 0.0001)
}

func (s *RedisRepositoryTestSuite) TestArchiveEmptyRoom() {
	s.Require().NoError(s.repo.ArchiveAndReset(s.ctx, &ArchiveAndResetInput{RoomID: s.roomID}))
	s.False(s.mr.Exists("total:room:22625025:danmu"))
}
