package monitor

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/starwatch/internal/common/clock/mocks"
	"github.com/KirkDiggler/starwatch/internal/feed"
	feedMocks "github.com/KirkDiggler/starwatch/internal/feed/mocks"
	"github.com/KirkDiggler/starwatch/internal/models"
	notifierMocks "github.com/KirkDiggler/starwatch/internal/notifier/mocks"
	platformMocks "github.com/KirkDiggler/starwatch/internal/platform/mocks"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	roomMocks "github.com/KirkDiggler/starwatch/internal/repositories/room/mocks"
	statsRepoMocks "github.com/KirkDiggler/starwatch/internal/repositories/stats/mocks"
	reportService "github.com/KirkDiggler/starwatch/internal/services/report"
	reportMocks "github.com/KirkDiggler/starwatch/internal/services/report/mocks"
	statsService "github.com/KirkDiggler/starwatch/internal/services/stats"
	statsMocks "github.com/KirkDiggler/starwatch/internal/services/stats/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HandlersTestSuite drives the handlers against mocked dependencies only
type HandlersTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	ctx      context.Context

	mockFeed     *feedMocks.MockFeed
	mockRoomRepo *roomMocks.MockRepository
	mockStats    *statsRepoMocks.MockRepository
	mockStatsSvc *statsMocks.MockService
	mockReport   *reportMocks.MockService
	mockPlatform *platformMocks.MockClient
	mockNotifier *notifierMocks.MockNotifier
	mockClock    *clockMocks.MockClock

	monitor  *monitor
	handlers map[string]feed.Handler
	now      time.Time
}

func (s *HandlersTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.ctx = context.Background()

	s.mockFeed = feedMocks.NewMockFeed(s.mockCtrl)
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockStats = statsRepoMocks.NewMockRepository(s.mockCtrl)
	s.mockStatsSvc = statsMocks.NewMockService(s.mockCtrl)
	s.mockReport = reportMocks.NewMockService(s.mockCtrl)
	s.mockPlatform = platformMocks.NewMockClient(s.mockCtrl)
	s.mockNotifier = notifierMocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.now = time.Unix(testStartTime+3600, 0)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	s.handlers = make(map[string]feed.Handler)
	s.mockFeed.EXPECT().On(gomock.Any(), gomock.Any()).Do(func(name string, handler feed.Handler) {
		s.handlers[name] = handler
	}).AnyTimes()

	m, err := New(&Config{
		Streamer: &models.Streamer{
			UID:    7,
			Name:   "streamer",
			RoomID: testRoomID,
			Targets: []*models.Target{{
				ID:         "channel-1",
				LiveOff:    models.PushConfig{Enabled: true},
				LiveReport: models.ReportOptions{Enabled: true, Danmu: true, SC: true},
			}},
		},
		NewFeed:       func(int64) (feed.Feed, error) { return s.mockFeed, nil },
		RoomRepo:      s.mockRoomRepo,
		StatsRepo:     s.mockStats,
		StatsService:  s.mockStatsSvc,
		ReportService: s.mockReport,
		Platform:      s.mockPlatform,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		Settings:      Settings{OnlyHandleNecessaryEvents: true},
	})
	s.Require().NoError(err)
	s.monitor = m
	s.monitor.register(s.mockFeed)
}

func (s *HandlersTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) fire(name, raw string) error {
	handler, ok := s.handlers[name]
	s.Require().True(ok, "no handler for %s", name)
	return handler(s.ctx, &feed.Event{Name: name, Raw: []byte(raw)})
}

func (s *HandlersTestSuite) expectClosed() {
	s.mockRoomRepo.EXPECT().SetStatus(gomock.Any(), &roomRepo.SetStatusInput{RoomID: testRoomID, Status: models.LiveStatusOff}).Return(nil)
	s.mockRoomRepo.EXPECT().SetEndTime(gomock.Any(), &roomRepo.SetTimeInput{RoomID: testRoomID, Timestamp: s.now.Unix()}).Return(nil)
}

func (s *HandlersTestSuite) TestGatedRoutes() {
	s.Contains(s.handlers, "DANMU_MSG")
	s.Contains(s.handlers, "SUPER_CHAT_MESSAGE")
	s.NotContains(s.handlers, "SEND_GIFT")
	s.NotContains(s.handlers, "GUARD_BUY")
	s.NotContains(s.handlers, "DYNAMIC_UPDATE")
}

func (s *HandlersTestSuite) TestChatIsForwardedToStats() {
	s.mockStatsSvc.EXPECT().RecordChat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *statsService.RecordChatInput) error {
			s.Equal(testRoomID, input.RoomID)
			s.Equal(int64(42), input.Chat.UserID)
			s.Equal("hello", input.Chat.Content)
			s.True(input.Chat.CloudEligible)
			return nil
		})

	raw := fmt.Sprintf(`{"cmd":"DANMU_MSG","info":[[0,1,25,16777215,1700000000,0,0,"",0,0,0,"",0,"{}"],%q,[42,"user"]]}`, "hello")
	s.NoError(s.fire("DANMU_MSG", raw))
}

func (s *HandlersTestSuite) TestStatsFailureIsReturned() {
	s.mockStatsSvc.EXPECT().RecordSuperChat(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	err := s.fire("SUPER_CHAT_MESSAGE", `{"cmd":"SUPER_CHAT_MESSAGE","data":{"uid":42,"price":30}}`)
	s.Require().Error(err)
	s.Contains(err.Error(), "SUPER_CHAT_MESSAGE")
}

func (s *HandlersTestSuite) TestPanicBecomesError() {
	s.mockStatsSvc.EXPECT().RecordChat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *statsService.RecordChatInput) error {
			panic("boom")
		})

	raw := `{"cmd":"DANMU_MSG","info":[[0,1,25,16777215,1700000000,0,0,"",0,0,0,"",0,"{}"],"hi",[42,"user"]]}`
	err := s.fire("DANMU_MSG", raw)
	s.Require().Error(err)
	s.Contains(err.Error(), "panicked")
}

func (s *HandlersTestSuite) TestReportFailureSendsNothing() {
	s.expectClosed()
	s.mockReport.EXPECT().Build(gomock.Any(), gomock.Any()).Return(nil, errors.New("no data"))

	err := s.fire("PREPARING", `{"cmd":"PREPARING"}`)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to build report")
}

func (s *HandlersTestSuite) TestLiveEndedFailureStillSendsReport() {
	report := &models.Report{ID: "r-1", UName: "streamer", RoomID: testRoomID}

	s.expectClosed()
	s.mockReport.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, input *reportService.BuildInput) (*models.Report, error) {
			s.Equal(int64(7), input.Streamer.UID)
			return report, nil
		})
	s.mockNotifier.EXPECT().SendLiveEnded(gomock.Any(), gomock.Any()).Return(errors.New("discord down"))
	s.mockNotifier.EXPECT().SendReport(gomock.Any(), gomock.Any()).Return(nil)

	s.NoError(s.fire("PREPARING", `{"cmd":"PREPARING"}`))
}

func (s *HandlersTestSuite) TestPersistedStatusFailureDefersReconcile() {
	// the first link only marks the room linked
	s.NoError(s.fire(feed.EventLinked, ""))

	s.mockPlatform.EXPECT().GetRoomPlayStatus(gomock.Any(), testRoomID).Return(models.LiveStatusOff, nil).Times(2)
	gomock.InOrder(
		s.mockRoomRepo.EXPECT().GetStatus(gomock.Any(), gomock.Any()).Return(models.LiveStatusUnknown, errors.New("timeout")),
		s.mockRoomRepo.EXPECT().GetStatus(gomock.Any(), gomock.Any()).Return(models.LiveStatusOff, nil),
	)

	s.Error(s.fire(feed.EventLinked, ""))
	s.True(s.monitor.state.pendingReconcile)

	// the next event retries before it is handled
	s.mockStatsSvc.EXPECT().RecordChat(gomock.Any(), gomock.Any()).Return(nil)
	raw := `{"cmd":"DANMU_MSG","info":[[0,1,25,16777215,1700000000,0,0,"",0,0,0,"",0,"{}"],"hi",[42,"user"]]}`
	s.NoError(s.fire("DANMU_MSG", raw))
	s.False(s.monitor.state.pendingReconcile)
}

func TestHandledEvents(t *testing.T) {
	streamer := &models.Streamer{
		UID: 1,
		Targets: []*models.Target{{
			ID:         "c",
			PostUpdate: models.PushConfig{Enabled: true},
			LiveReport: models.ReportOptions{Enabled: true, GiftRanking: 3},
		}},
	}

	assert.Equal(t,
		[]EventKind{EventLink, EventLive, EventPreparing, EventGift, EventPostUpdate},
		HandledEvents(streamer, Settings{OnlyHandleNecessaryEvents: true}))
	assert.Len(t, HandledEvents(streamer, Settings{}), 8)

	assert.True(t, Necessary(streamer))
	assert.False(t, Necessary(&models.Streamer{UID: 2}))
}
