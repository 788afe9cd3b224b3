package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/starwatch/internal/common/clock"
	"github.com/KirkDiggler/starwatch/internal/common/uuid"
	"github.com/KirkDiggler/starwatch/internal/config"
	"github.com/KirkDiggler/starwatch/internal/feed"
	"github.com/KirkDiggler/starwatch/internal/handlers/discord"
	"github.com/KirkDiggler/starwatch/internal/platform"
	"github.com/KirkDiggler/starwatch/internal/repositories/history"
	"github.com/KirkDiggler/starwatch/internal/repositories/mention"
	"github.com/KirkDiggler/starwatch/internal/repositories/room"
	"github.com/KirkDiggler/starwatch/internal/repositories/stats"
	"github.com/KirkDiggler/starwatch/internal/services/monitor"
	"github.com/KirkDiggler/starwatch/internal/services/posts"
	reportService "github.com/KirkDiggler/starwatch/internal/services/report"
	statsService "github.com/KirkDiggler/starwatch/internal/services/stats"
	"github.com/fsnotify/fsnotify"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCmd(load func() (*config.Config, error), cfgFile func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Monitor every configured room until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cfgFile())
		},
	}
}

func run(parent context.Context, cfg *config.Config, cfgFile string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A changed config file stops the run so the supervisor restarts with it
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := config.Watch(cfgFile, func(fsnotify.Event) {
		log.Info().Msg("Restarting for new configuration")
		cancel()
	}); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	// Initialize repositories
	roomRepo, err := room.NewRedis(&room.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create room repository: %w", err)
	}

	statsRepo, err := stats.NewRedis(&stats.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create stats repository: %w", err)
	}

	historyRepo, err := history.NewRedis(&history.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create history repository: %w", err)
	}

	mentionRepo, err := mention.NewRedis(&mention.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create mention repository: %w", err)
	}

	client, err := newPlatform(cfg)
	if err != nil {
		return err
	}

	streamers := cfg.Streamers()
	if err := monitor.Bootstrap(ctx, &monitor.BootstrapInput{
		Streamers: streamers,
		Platform:  client,
		RoomRepo:  roomRepo,
		StatsRepo: statsRepo,
	}); err != nil {
		// Rooms start from whatever status was persisted last
		log.Warn().Err(err).Msg("Startup status sync failed")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:         cfg.Discord.Token,
		ApplicationID: cfg.Discord.ApplicationID,
		GuildID:       cfg.Discord.GuildID,
		MentionRepo:   mentionRepo,
		TargetIDs:     cfg.TargetIDs(),
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			log.Error().Err(err).Msg("Error stopping bot")
		}
	}()

	discordNotifier, err := discord.NewNotifier(&discord.NotifierConfig{
		Sender:      bot.Session(),
		MentionRepo: mentionRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}

	// Initialize services
	systemClock := clock.New()

	statsSvc, err := statsService.New(&statsService.Config{
		StatsRepo: statsRepo,
		Clock:     systemClock,
	})
	if err != nil {
		return fmt.Errorf("failed to create stats service: %w", err)
	}

	reportSvc, err := reportService.New(&reportService.Config{
		RoomRepo:    roomRepo,
		StatsRepo:   statsRepo,
		HistoryRepo: historyRepo,
		Platform:    client,
		UUID:        uuid.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create report service: %w", err)
	}

	newFeed := func(roomID int64) (feed.Feed, error) {
		return feed.NewWebSocket(&feed.WebSocketConfig{
			URL:        cfg.Feed.URL,
			RoomID:     roomID,
			RetryDelay: cfg.Feed.RetryDelay,
		})
	}

	settings := monitor.Settings{
		OnlyConnectNecessaryRooms: cfg.Monitor.OnlyConnectNecessaryRoom,
		OnlyHandleNecessaryEvents: cfg.Monitor.OnlyHandleNecessaryEvent,
		ReconnectInterval:         cfg.Monitor.ReconnectInterval,
		ReconnectMessage:          cfg.Monitor.ReconnectMessage,
		PostActions:               cfg.PostActions(),
	}

	g, gctx := errgroup.WithContext(ctx)

	var subscribers []posts.Subscriber
	var connecting []monitor.Service
	for _, streamer := range streamers {
		m, err := monitor.New(&monitor.Config{
			Streamer:      streamer,
			NewFeed:       newFeed,
			RoomRepo:      roomRepo,
			StatsRepo:     statsRepo,
			StatsService:  statsSvc,
			ReportService: reportSvc,
			Platform:      client,
			Notifier:      discordNotifier,
			Clock:         systemClock,
			Settings:      settings,
		})
		if err != nil {
			return fmt.Errorf("failed to create monitor for %d: %w", streamer.UID, err)
		}

		if streamer.AnyPostUpdate() {
			subscribers = append(subscribers, m)
		}
		if !settings.OnlyConnectNecessaryRooms || monitor.Necessary(streamer) {
			connecting = append(connecting, m)
		}

		uid := streamer.UID
		g.Go(func() error {
			err := m.Connect(gctx)
			var cfgErr *monitor.ConfigurationError
			switch {
			case errors.As(err, &cfgErr):
				log.Error().Err(err).Int64("uid", uid).Msg("Broadcaster has no live room, skipping")
			case err != nil:
				log.Error().Err(err).Int64("uid", uid).Msg("Room monitor stopped")
			}
			// Rooms fail independently
			return nil
		})
	}

	var poller posts.Service
	if cfg.Posts.Enabled && len(subscribers) > 0 {
		poller, err = posts.New(&posts.Config{
			Platform:    client,
			RoomRepo:    roomRepo,
			Subscribers: subscribers,
			Interval:    cfg.Posts.Interval,
		})
		if err != nil {
			return fmt.Errorf("failed to create post poller: %w", err)
		}
	}

	// Posts start once every room has linked or the wait gave up
	g.Go(func() error {
		if unlinked := waitForLinks(gctx, connecting, cfg.Monitor.ConnectTimeout); len(unlinked) > 0 {
			log.Warn().Ints64("uids", unlinked).Dur("timeout", cfg.Monitor.ConnectTimeout).
				Msg("Some rooms have not linked, check their feeds")
		}
		if poller == nil || gctx.Err() != nil {
			return nil
		}
		return poller.Run(gctx)
	})

	log.Info().Int("rooms", len(streamers)).Msg("Monitoring started")

	err = g.Wait()
	log.Info().Msg("Shutting down")
	return err
}

// waitForLinks blocks until every room has linked, returning the UIDs of the
// rooms still unlinked when timeout passes. A zero timeout does not wait.
func waitForLinks(ctx context.Context, rooms []monitor.Service, timeout time.Duration) []int64 {
	if timeout <= 0 || len(rooms) == 0 {
		return nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for i, room := range rooms {
		select {
		case <-room.Linked():
		case <-ctx.Done():
			return nil
		case <-timer.C:
			var unlinked []int64
			for _, r := range rooms[i:] {
				select {
				case <-r.Linked():
				default:
					unlinked = append(unlinked, r.UID())
				}
			}
			return unlinked
		}
	}
	return nil
}

func newPlatform(cfg *config.Config) (platform.Client, error) {
	client, err := platform.NewBilibili(&platform.Config{
		LiveBaseURL:       cfg.Platform.LiveBaseURL,
		VCBaseURL:         cfg.Platform.VCBaseURL,
		SESSDATA:          cfg.Platform.SESSDATA,
		RequestsPerSecond: cfg.Platform.RequestsPerSecond,
		Timeout:           cfg.Platform.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create platform client: %w", err)
	}
	return client, nil
}
