package report

import (
	"context"
	"errors"
	"testing"

	uuidMocks "github.com/KirkDiggler/starwatch/internal/common/uuid/mocks"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/platform"
	platformMocks "github.com/KirkDiggler/starwatch/internal/platform/mocks"
	historyRepo "github.com/KirkDiggler/starwatch/internal/repositories/history"
	historyMocks "github.com/KirkDiggler/starwatch/internal/repositories/history/mocks"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	mockCtrl *gomock.Controller

	mockPlatform *platformMocks.MockClient
	mockUUID     *uuidMocks.MockUUID

	roomRepo    roomRepo.Repository
	statsRepo   statsRepo.Repository
	historyRepo historyRepo.Repository

	service  Service
	ctx      context.Context
	streamer *models.Streamer
}

func (s *ReportServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.ctx = context.Background()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPlatform = platformMocks.NewMockClient(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockUUID.EXPECT().NewUUID().Return("report-1").AnyTimes()

	rooms, err := roomRepo.NewRedis(&roomRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.roomRepo = rooms

	stats, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.statsRepo = stats

	history, err := historyRepo.NewRedis(&historyRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.historyRepo = history

	svc, err := New(&Config{
		RoomRepo:    s.roomRepo,
		StatsRepo:   s.statsRepo,
		HistoryRepo: s.historyRepo,
		Platform:    s.mockPlatform,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc

	s.streamer = &models.Streamer{
		UID:    7,
		Name:   "streamer",
		RoomID: 1234,
		Targets: []*models.Target{{
			ID:         "channel-1",
			LiveReport: models.ReportOptions{Enabled: true, Danmu: true},
		}},
	}

	s.Require().NoError(s.roomRepo.SetStartTime(s.ctx, &roomRepo.SetTimeInput{RoomID: 1234, Timestamp: 1700000000}))
	s.Require().NoError(s.roomRepo.SetEndTime(s.ctx, &roomRepo.SetTimeInput{RoomID: 1234, Timestamp: 1700003723}))
}

func (s *ReportServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (s *ReportServiceTestSuite) chat(userID int64, times int) {
	for i := 0; i < times; i++ {
		_, err := s.statsRepo.IncrRoom(s.ctx, &statsRepo.IncrRoomInput{RoomID: 1234, Metric: models.MetricDanmu, Amount: 1})
		s.Require().NoError(err)
		_, err = s.statsRepo.IncrUser(s.ctx, &statsRepo.IncrUserInput{RoomID: 1234, Metric: models.MetricDanmu, UserID: userID, Amount: 1})
		s.Require().NoError(err)
	}
}

func (s *ReportServiceTestSuite) TestBeatPercent() {
	s.Equal(25.0, BeatPercent(5, 20))
	s.Equal(100.0, BeatPercent(0, 0))
	s.Equal(33.33, BeatPercent(1, 3))
	s.Equal(0.0, BeatPercent(0, 8))
}

func (s *ReportServiceTestSuite) TestBeatPercentRoundsInTwoStages() {
	s.Equal(0.63, BeatPercent(1, 160))
	s.Equal(1.87, BeatPercent(3, 160))
	s.Equal(66.67, BeatPercent(2, 3))
}

func (s *ReportServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{StatsRepo: s.statsRepo, HistoryRepo: s.historyRepo, Platform: s.mockPlatform, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilRoomRepo)

	_, err = New(&Config{RoomRepo: s.roomRepo, StatsRepo: s.statsRepo, HistoryRepo: s.historyRepo, UUID: s.mockUUID})
	s.ErrorIs(err, ErrNilPlatform)
}

func (s *ReportServiceTestSuite) TestBuildTotalsAndDuration() {
	s.chat(1, 5)
	s.chat(2, 3)
	s.chat(3, 2)

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)

	s.Equal("report-1", report.ID)
	s.Equal(int64(10), report.DanmuCount)
	s.Equal(int64(3), report.DanmuPersonCount)
	s.Equal(models.Duration{Hours: 1, Minutes: 2, Seconds: 3}, report.Duration)
	s.Equal(100.0, report.BoxBeatPercent)

	fields := report.Fields()
	s.Equal(int64(10), fields["danmu_count"])
	s.Equal(int64(3), fields["danmu_person_count"])
	s.NotContains(fields, "fans_before")
	s.NotContains(fields, "danmu_ranking_unames")
	s.NotContains(fields, "all_danmu")
}

func (s *ReportServiceTestSuite) TestBuildRecordsHistoryBeforeRanking() {
	for i, profit := range []float64{-10, 5, 20} {
		s.Require().NoError(s.historyRepo.Add(s.ctx, &historyRepo.AddInput{
			StartTime: int64(i + 1), UID: 99, UName: "other", Profit: profit,
		}))
	}

	_, err := s.statsRepo.IncrRoom(s.ctx, &statsRepo.IncrRoomInput{RoomID: 1234, Metric: models.MetricBoxProfit, Amount: 10})
	s.Require().NoError(err)

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)

	// Two of the three earlier sessions made less
	s.Equal(66.67, report.BoxBeatPercent)

	count, err := s.historyRepo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), count)
}

func (s *ReportServiceTestSuite) TestBuildDeltasWithMissingSnapshot() {
	s.streamer.Targets[0].LiveReport.FansChange = true
	s.mockPlatform.EXPECT().GetRoomInfo(s.ctx, int64(1234)).Return(&models.RoomInfo{
		RoomID: 1234, Followers: 5100, FanMedals: 0, Guards: 12,
	}, nil)

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)
	s.Require().NotNil(report.Deltas)
	s.Equal(models.CountDelta{Before: -1, After: 5100}, report.Deltas.Followers)
	s.Equal(models.CountDelta{Before: -1, After: 12}, report.Deltas.Guards)
}

func (s *ReportServiceTestSuite) TestBuildDeltasFromSnapshot() {
	s.streamer.Targets[0].LiveReport.GuardChange = true
	s.Require().NoError(s.roomRepo.SaveSnapshot(s.ctx, &roomRepo.SaveSnapshotInput{
		RoomID:    1234,
		StartTime: 1700000000,
		Snapshot:  &models.Snapshot{Followers: 5000, FanMedals: 300, Guards: 10},
	}))
	s.mockPlatform.EXPECT().GetRoomInfo(s.ctx, int64(1234)).Return(&models.RoomInfo{
		RoomID: 1234, Followers: 5100, FanMedals: 321, Guards: 12,
	}, nil)

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)

	fields := report.Fields()
	s.Equal(int64(5000), fields["fans_before"])
	s.Equal(int64(321), fields["fans_medal_after"])
	s.Equal(int64(10), fields["guard_before"])
}

func (s *ReportServiceTestSuite) TestBuildRankingUsesLargestRequestedSize() {
	s.streamer.Targets[0].LiveReport.DanmuRanking = 1
	s.streamer.Targets = append(s.streamer.Targets,
		&models.Target{ID: "channel-2", LiveReport: models.ReportOptions{Enabled: true, DanmuRanking: 2}},
		// Disabled reports do not widen the ranking
		&models.Target{ID: "channel-3", LiveReport: models.ReportOptions{Enabled: false, DanmuRanking: 10}},
	)
	s.chat(1, 5)
	s.chat(2, 3)
	s.chat(3, 2)

	s.mockPlatform.EXPECT().GetUserCards(s.ctx, []int64{1, 2}).Return(&platform.UserCards{
		Names: []string{"one", "two"},
		Faces: []string{"f1", "f2"},
	}, nil)

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)

	fields := report.Fields()
	s.Equal([]string{"one", "two"}, fields["danmu_ranking_unames"])
	s.Equal([]string{"f1", "f2"}, fields["danmu_ranking_faces"])
	s.Equal([]float64{5, 3}, fields["danmu_ranking_counts"])
}

func (s *ReportServiceTestSuite) TestBuildEmptyRankingIsOmitted() {
	s.streamer.Targets[0].LiveReport.SCRanking = 3

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)

	s.Nil(report.Rankings)
	fields := report.Fields()
	s.NotContains(fields, "sc_ranking_unames")
	s.NotContains(fields, "sc_ranking_counts")
}

func (s *ReportServiceTestSuite) TestBuildGuardRoster() {
	s.streamer.Targets[0].LiveReport.GuardList = true
	_, err := s.statsRepo.IncrUser(s.ctx, &statsRepo.IncrUserInput{RoomID: 1234, Metric: models.MetricCaptain, UserID: 5, Amount: 1})
	s.Require().NoError(err)
	_, err = s.statsRepo.IncrUser(s.ctx, &statsRepo.IncrUserInput{RoomID: 1234, Metric: models.MetricCaptain, UserID: 6, Amount: 3})
	s.Require().NoError(err)

	s.mockPlatform.EXPECT().GetUserCards(s.ctx, []int64{6, 5}).Return(&platform.UserCards{
		Names: []string{"six", "five"},
		Faces: []string{"f6", "f5"},
	}, nil)

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)

	s.Len(report.Guards, 1)
	fields := report.Fields()
	s.Equal([][]any{{"f6", "six", int64(3)}, {"f5", "five", int64(1)}}, fields["captain_infos"])
	s.NotContains(fields, "governor_infos")
}

func (s *ReportServiceTestSuite) TestBuildChatLog() {
	s.streamer.Targets[0].LiveReport.DanmuCloud = true
	s.Require().NoError(s.statsRepo.AppendChat(s.ctx, &statsRepo.AppendChatInput{RoomID: 1234, Content: "hello"}))

	report, err := s.service.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)
	s.Equal([]string{"hello"}, report.Fields()["all_danmu"])
}

func (s *ReportServiceTestSuite) TestBuildNilInput() {
	_, err := s.service.Build(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.Build(s.ctx, &BuildInput{})
	s.ErrorIs(err, ErrNilStreamer)
}

func (s *ReportServiceTestSuite) TestHistoryCountedBeforeInsert() {
	mockHistory := historyMocks.NewMockRepository(s.mockCtrl)
	svc, err := New(&Config{
		RoomRepo:    s.roomRepo,
		StatsRepo:   s.statsRepo,
		HistoryRepo: mockHistory,
		Platform:    s.mockPlatform,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)

	gomock.InOrder(
		mockHistory.EXPECT().Count(gomock.Any()).Return(int64(4), nil),
		mockHistory.EXPECT().Add(gomock.Any(), &historyRepo.AddInput{
			StartTime: 1700000000,
			UID:       7,
			UName:     "streamer",
			Profit:    0,
		}).Return(nil),
		mockHistory.EXPECT().Rank(gomock.Any(), gomock.Any()).Return(int64(1), nil),
	)

	report, err := svc.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().NoError(err)
	s.Equal(25.0, report.BoxBeatPercent)
}

func (s *ReportServiceTestSuite) TestHistoryFailure() {
	mockHistory := historyMocks.NewMockRepository(s.mockCtrl)
	svc, err := New(&Config{
		RoomRepo:    s.roomRepo,
		StatsRepo:   s.statsRepo,
		HistoryRepo: mockHistory,
		Platform:    s.mockPlatform,
		UUID:        s.mockUUID,
	})
	s.Require().NoError(err)

	mockHistory.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("connection refused"))

	_, err = svc.Build(s.ctx, &BuildInput{Streamer: s.streamer})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to count box history")
}
