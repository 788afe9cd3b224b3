package monitor

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/starwatch/internal/common/clock"
	"github.com/KirkDiggler/starwatch/internal/feed"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/notifier"
	"github.com/KirkDiggler/starwatch/internal/platform"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
	reportService "github.com/KirkDiggler/starwatch/internal/services/report"
	statsService "github.com/KirkDiggler/starwatch/internal/services/stats"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// monitor implements the Service interface for one room
type monitor struct {
	streamer *models.Streamer
	newFeed  FeedFactory

	roomRepo      roomRepo.Repository
	statsRepo     statsRepo.Repository
	statsService  statsService.Service
	reportService reportService.Service
	platform      platform.Client
	notifier      notifier.Notifier
	clock         clock.Clock
	settings      Settings

	// state and logger are only touched by handlers after Connect
	state  *sessionState
	logger zerolog.Logger

	// linked is closed by the first link
	linked chan struct{}

	mu   sync.RWMutex
	feed feed.Feed
}

// New creates a monitor for one broadcaster
func New(cfg *Config) (*monitor, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Streamer == nil {
		return nil, ErrNilStreamer
	}

	if cfg.NewFeed == nil {
		return nil, ErrNilFeedFactory
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.StatsService == nil {
		return nil, ErrNilStatsService
	}

	if cfg.ReportService == nil {
		return nil, ErrNilReportService
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	m := &monitor{
		streamer:      cfg.Streamer,
		newFeed:       cfg.NewFeed,
		roomRepo:      cfg.RoomRepo,
		statsRepo:     cfg.StatsRepo,
		statsService:  cfg.StatsService,
		reportService: cfg.ReportService,
		platform:      cfg.Platform,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		settings:      cfg.Settings,
		state:         &sessionState{},
		linked:        make(chan struct{}),
	}
	m.refreshLogger()

	return m, nil
}

func (m *monitor) refreshLogger() {
	m.logger = log.With().
		Int64("uid", m.streamer.UID).
		Int64("room_id", m.streamer.RoomID).
		Str("uname", m.streamer.Name).
		Logger()
}

// UID returns the broadcaster's platform user ID
func (m *monitor) UID() int64 {
	return m.streamer.UID
}

// Linked is closed once the room's feed has linked for the first time
func (m *monitor) Linked() <-chan struct{} {
	return m.linked
}


// Connect resolves the room, installs the handlers and runs the feed until ctx is cancelled
func (m *monitor) Connect(ctx context.Context) error {
	if m.streamer.Name == "" || m.streamer.RoomID == 0 {
		info, err := m.platform.GetUserInfo(ctx, m.streamer.UID)
		if err != nil {
			return fmt.Errorf("failed to get user info: %w", err)
		}

		m.streamer.Name = info.Name
		if info.RoomID == 0 {
			return &ConfigurationError{UID: m.streamer.UID, Name: info.Name}
		}
		m.streamer.RoomID = info.RoomID
		m.refreshLogger()
	}

	if m.settings.OnlyConnectNecessaryRooms && !Necessary(m.streamer) {
		m.logger.Warn().Msg("No target wants notifications for this room, skipping")
		return nil
	}

	f, err := m.newFeed(m.streamer.RoomID)
	if err != nil {
		return fmt.Errorf("failed to create feed: %w", err)
	}
	m.register(f)

	m.mu.Lock()
	m.feed = f
	m.mu.Unlock()

	m.logger.Info().Msg("Connecting to room")
	return f.Connect(ctx)
}

// DispatchPost queues a post behind the room's other events
func (m *monitor) DispatchPost(ctx context.Context, post *models.Post) error {
	if post == nil {
		return ErrNilInput
	}

	m.mu.RLock()
	f := m.feed
	m.mu.RUnlock()

	if f == nil {
		return ErrNotConnected
	}

	event, err := NewPostEvent(post)
	if err != nil {
		return err
	}

	return f.Dispatch(ctx, event)
}

func (m *monitor) onLink(ctx context.Context, _ *feed.Event) error {
	if !m.state.linked {
		m.state.linked = true
		close(m.linked)
		m.logger.Info().Msg("Linked to room")
		return nil
	}

	m.logger.Info().Msg("Relinked to room")
	return m.reconcile(ctx)
}

// reconcile compares the platform's live status with the persisted one and
// replays the one transition missed while the link was down
func (m *monitor) reconcile(ctx context.Context) error {
	m.state.pendingReconcile = false
	roomID := m.streamer.RoomID

	current, err := m.platform.GetRoomPlayStatus(ctx, roomID)
	if err != nil {
		m.state.pendingReconcile = true
		m.logger.Warn().Err(err).Msg("Could not read live status, reconcile deferred")
		return nil
	}

	last, err := m.roomRepo.GetStatus(ctx, &roomRepo.GetStatusInput{RoomID: roomID})
	if err != nil {
		m.state.pendingReconcile = true
		return fmt.Errorf("failed to get persisted status: %w", err)
	}

	if current == last {
		return nil
	}

	err = m.roomRepo.SetStatus(ctx, &roomRepo.SetStatusInput{RoomID: roomID, Status: current})
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	if current == models.LiveStatusLive {
		m.logger.Warn().Msg("Broadcast started while disconnected")
		if err := m.startSession(ctx, true); err != nil {
			return err
		}
	}

	if last == models.LiveStatusLive {
		m.logger.Warn().Msg("Broadcast ended while disconnected")
		if err := m.endSession(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (m *monitor) onLive(ctx context.Context, event *feed.Event) error {
	live, err := decodeLive(event.Raw)
	if err != nil {
		return err
	}

	// The platform repeats LIVE several times per start
	if !live.HasStartTime {
		return nil
	}

	return m.startSession(ctx, false)
}

// startSession opens a session. A synthesized start keeps the counters and
// skips the encoder reconnect check.
func (m *monitor) startSession(ctx context.Context, synthesized bool) error {
	roomID := m.streamer.RoomID

	info, err := m.platform.GetRoomInfo(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to get room info: %w", err)
	}

	if info.Name != "" && info.Name != m.streamer.Name {
		m.streamer.Name = info.Name
		m.refreshLogger()
	}

	err = m.roomRepo.SetStatus(ctx, &roomRepo.SetStatusInput{RoomID: roomID, Status: models.LiveStatusLive})
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	if !synthesized {
		reconnected, err := m.encoderReconnected(ctx)
		if err != nil {
			return err
		}
		if reconnected {
			m.logger.Info().Msg("Broadcaster reconnected")
			if m.settings.ReconnectMessage == "" {
				return nil
			}
			return m.notifier.SendToAll(ctx, &notifier.SendToAllInput{
				Streamer: m.streamer,
				Message:  m.settings.ReconnectMessage,
				Filter:   notifier.LiveOnEnabled,
			})
		}
	}

	m.logger.Info().Bool("synthesized", synthesized).Int64("start_time", info.StartTime).Msg("Broadcast started")

	err = m.roomRepo.SetStartTime(ctx, &roomRepo.SetTimeInput{RoomID: roomID, Timestamp: info.StartTime})
	if err != nil {
		return fmt.Errorf("failed to set start time: %w", err)
	}

	if err := m.captureSnapshot(ctx, info, synthesized); err != nil {
		return err
	}

	if !synthesized {
		if err := m.statsRepo.ArchiveAndReset(ctx, &statsRepo.ArchiveAndResetInput{RoomID: roomID}); err != nil {
			return fmt.Errorf("failed to reset session counters: %w", err)
		}
	}

	args := &notifier.LiveInput{
		Streamer: m.streamer,
		UName:    m.streamer.Name,
		Title:    info.Title,
		URL:      fmt.Sprintf("https://live.bilibili.com/%d", roomID),
		Cover:    info.Cover,
	}

	if err := m.notifier.SendLiveStartedMentions(ctx, args); err != nil {
		m.logger.Error().Err(err).Msg("Failed to send live start mentions")
	}

	return m.notifier.SendLiveStarted(ctx, args)
}

func (m *monitor) encoderReconnected(ctx context.Context) (bool, error) {
	lastEnd, err := m.roomRepo.GetEndTime(ctx, &roomRepo.GetTimeInput{RoomID: m.streamer.RoomID})
	if err != nil {
		return false, fmt.Errorf("failed to get end time: %w", err)
	}

	gap := m.clock.Now().Unix() - lastEnd
	return gap <= int64(m.settings.ReconnectInterval.Seconds()), nil
}

// captureSnapshot stores the audience counts at session start. A synthesized
// start keeps a snapshot taken earlier for the same start time.
func (m *monitor) captureSnapshot(ctx context.Context, info *models.RoomInfo, synthesized bool) error {
	input := &roomRepo.GetSnapshotInput{RoomID: m.streamer.RoomID, StartTime: info.StartTime}

	if synthesized {
		exists, err := m.roomRepo.SnapshotExists(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to check snapshot: %w", err)
		}
		if exists {
			return nil
		}
	}

	err := m.roomRepo.SaveSnapshot(ctx, &roomRepo.SaveSnapshotInput{
		RoomID:    m.streamer.RoomID,
		StartTime: info.StartTime,
		Snapshot: &models.Snapshot{
			Followers: info.Followers,
			FanMedals: info.FanMedals,
			Guards:    info.Guards,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (m *monitor) onPreparing(ctx context.Context, _ *feed.Event) error {
	return m.endSession(ctx)
}

// endSession closes the session, then sends the live-off message and the report
func (m *monitor) endSession(ctx context.Context) error {
	roomID := m.streamer.RoomID

	err := m.roomRepo.SetStatus(ctx, &roomRepo.SetStatusInput{RoomID: roomID, Status: models.LiveStatusOff})
	if err != nil {
		return fmt.Errorf("failed to set status: %w", err)
	}

	err = m.roomRepo.SetEndTime(ctx, &roomRepo.SetTimeInput{RoomID: roomID, Timestamp: m.clock.Now().Unix()})
	if err != nil {
		return fmt.Errorf("failed to set end time: %w", err)
	}

	m.logger.Info().Msg("Broadcast ended")

	report, err := m.reportService.Build(ctx, &reportService.BuildInput{Streamer: m.streamer})
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	err = m.notifier.SendLiveEnded(ctx, &notifier.LiveInput{
		Streamer: m.streamer,
		UName:    m.streamer.Name,
	})
	if err != nil {
		m.logger.Error().Err(err).Msg("Failed to send live end message")
	}

	return m.notifier.SendReport(ctx, &notifier.ReportInput{
		Streamer: m.streamer,
		Report:   report,
	})
}

func (m *monitor) onDanmu(ctx context.Context, event *feed.Event) error {
	chat, err := decodeChat(event.Raw)
	if err != nil {
		return err
	}

	return m.statsService.RecordChat(ctx, &statsService.RecordChatInput{
		RoomID: m.streamer.RoomID,
		Chat:   chat,
	})
}

func (m *monitor) onGift(ctx context.Context, event *feed.Event) error {
	gift, err := decodeGift(event.Raw)
	if err != nil {
		return err
	}

	out, err := m.statsService.RecordGift(ctx, &statsService.RecordGiftInput{
		RoomID: m.streamer.RoomID,
		Gift:   gift,
	})
	if err != nil {
		return err
	}

	if gift.BlindBox {
		m.logger.Debug().
			Int64("user_id", gift.UserID).
			Float64("profit", out.BoxProfit).
			Float64("room_profit", out.BoxProfitTotal).
			Msg("Mystery box opened")
	}

	return nil
}

func (m *monitor) onSuperChat(ctx context.Context, event *feed.Event) error {
	sc, err := decodeSuperChat(event.Raw)
	if err != nil {
		return err
	}

	return m.statsService.RecordSuperChat(ctx, &statsService.RecordSuperChatInput{
		RoomID:    m.streamer.RoomID,
		SuperChat: sc,
	})
}

func (m *monitor) onGuardBuy(ctx context.Context, event *feed.Event) error {
	guard, err := decodeGuard(event.Raw)
	if err != nil {
		return err
	}

	return m.statsService.RecordGuard(ctx, &statsService.RecordGuardInput{
		RoomID: m.streamer.RoomID,
		Guard:  guard,
	})
}

func (m *monitor) onPostUpdate(ctx context.Context, event *feed.Event) error {
	post, err := decodePost(event.Raw)
	if err != nil {
		return err
	}

	m.logger.Info().Int64("post_id", post.ID).Int("type", int(post.Type)).Msg("New post")

	input := &notifier.PostInput{
		Streamer: m.streamer,
		UName:    m.streamer.Name,
		Action:   m.settings.PostActions.Action(post),
		URL:      post.URL(),
	}

	if err := m.notifier.SendPostUpdateMentions(ctx, input); err != nil {
		m.logger.Error().Err(err).Msg("Failed to send post mentions")
	}

	return m.notifier.SendPostUpdate(ctx, input)
}
