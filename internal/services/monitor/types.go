package monitor

import (
	"time"

	"github.com/KirkDiggler/starwatch/internal/common/clock"
	"github.com/KirkDiggler/starwatch/internal/feed"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/notifier"
	"github.com/KirkDiggler/starwatch/internal/platform"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
	reportService "github.com/KirkDiggler/starwatch/internal/services/report"
	statsService "github.com/KirkDiggler/starwatch/internal/services/stats"
)

// FeedFactory opens the event feed of a room
type FeedFactory func(roomID int64) (feed.Feed, error)

// Settings are the monitoring policies shared by every room
type Settings struct {
	// OnlyConnectNecessaryRooms skips rooms no target wants notifications for
	OnlyConnectNecessaryRooms bool

	// OnlyHandleNecessaryEvents skips stats events no target's report uses
	OnlyHandleNecessaryEvents bool

	// ReconnectInterval is the longest gap after a broadcast ends that a new
	// start still counts as the broadcaster's encoder reconnecting
	ReconnectInterval time.Duration

	// ReconnectMessage is sent to live-on targets on an encoder reconnect, empty sends nothing
	ReconnectMessage string

	// PostActions overrides the phrase used for each post type
	PostActions models.PostActions
}

// Config holds configuration for a room monitor
type Config struct {
	Streamer *models.Streamer
	NewFeed  FeedFactory

	// Repository dependencies
	RoomRepo  roomRepo.Repository
	StatsRepo statsRepo.Repository

	// Service dependencies
	StatsService  statsService.Service
	ReportService reportService.Service

	Platform platform.Client
	Notifier notifier.Notifier
	Clock    clock.Clock

	Settings Settings
}

// BootstrapInput contains parameters for the startup status sync
type BootstrapInput struct {
	Streamers []*models.Streamer
	Platform  platform.Client
	RoomRepo  roomRepo.Repository
	StatsRepo statsRepo.Repository
}

// sessionState is the per-room state only the monitor's handlers touch.
// Handlers run one at a time on the feed's consumer, so it needs no lock.
type sessionState struct {
	// linked is set after the first link of the process lifetime
	linked bool

	// pendingReconcile is set when a reconnect check could not read the live status
	pendingReconcile bool
}
