package feed

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultRetryDelay = 5 * time.Second
	defaultQueueSize  = 256
)

// WebSocketConfig holds configuration for a websocket feed
type WebSocketConfig struct {
	// URL of the relay serving JSON command frames, the room is added as room_id
	URL string

	RoomID int64

	// RetryDelay is the wait between reconnect attempts
	RetryDelay time.Duration

	// QueueSize bounds events waiting for their handler
	QueueSize int

	// Dialer overrides websocket.DefaultDialer
	Dialer *websocket.Dialer
}

// webSocketFeed implements Feed over a websocket relay of the platform's danmaku commands
type webSocketFeed struct {
	url        string
	retryDelay time.Duration
	dialer     *websocket.Dialer
	logger     zerolog.Logger

	mu       sync.RWMutex
	handlers map[string]Handler

	status atomic.Int32
	events chan *Event
}

// NewWebSocket creates a feed for one room
func NewWebSocket(cfg *WebSocketConfig) (*webSocketFeed, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.URL == "" {
		return nil, errors.New("feed URL cannot be empty")
	}

	if cfg.RoomID == 0 {
		return nil, errors.New("room ID cannot be empty")
	}

	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}
	query := u.Query()
	query.Set("room_id", strconv.FormatInt(cfg.RoomID, 10))
	u.RawQuery = query.Encode()

	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = defaultRetryDelay
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	dialer := cfg.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	f := &webSocketFeed{
		url:        u.String(),
		retryDelay: retryDelay,
		dialer:     dialer,
		logger:     log.With().Int64("room_id", cfg.RoomID).Logger(),
		handlers:   make(map[string]Handler),
		events:     make(chan *Event, queueSize),
	}
	f.status.Store(int32(StatusClosed))

	return f, nil
}

// On registers the handler for an event name
func (f *webSocketFeed) On(name string, handler Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[name] = handler
}

// Status returns the current link state
func (f *webSocketFeed) Status() Status {
	return Status(f.status.Load())
}

// Dispatch queues an event behind the ones already received
func (f *webSocketFeed) Dispatch(ctx context.Context, event *Event) error {
	select {
	case f.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Connect runs the feed until ctx is cancelled
func (f *webSocketFeed) Connect(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.consume(ctx)
	}()

	defer func() {
		f.status.Store(int32(StatusClosed))
		wg.Wait()
	}()

	for {
		err := f.session(ctx)
		if ctx.Err() != nil {
			return nil
		}
		f.logger.Warn().Err(err).Dur("retry_in", f.retryDelay).Msg("Feed link lost")

		timer := time.NewTimer(f.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// session holds one link open and queues its frames until it fails
func (f *webSocketFeed) session(ctx context.Context) error {
	f.status.Store(int32(StatusConnecting))

	conn, _, err := f.dialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return fmt.Errorf("failed to dial feed: %w", err)
	}
	defer conn.Close()

	// Unblock ReadMessage on shutdown
	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})
	defer stop()

	f.status.Store(int32(StatusConnected))
	f.logger.Debug().Msg("Feed linked")

	if err := f.Dispatch(ctx, &Event{Name: EventLinked}); err != nil {
		return err
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read feed: %w", err)
		}

		name, err := CommandName(data)
		if err != nil {
			f.logger.Debug().Err(err).Msg("Skipping malformed frame")
			continue
		}

		if err := f.Dispatch(ctx, &Event{Name: name, Raw: data}); err != nil {
			return err
		}
	}
}

// consume runs handlers one event at a time
func (f *webSocketFeed) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-f.events:
			f.mu.RLock()
			handler := f.handlers[event.Name]
			f.mu.RUnlock()

			if handler == nil {
				continue
			}

			if err := handler(ctx, event); err != nil {
				f.logger.Error().Err(err).Str("event", event.Name).Msg("Event handler failed")
			}
		}
	}
}

// CommandName extracts the event name from a command frame.
// Some commands carry a protocol suffix, as in "DANMU_MSG:4:0:2:2:2:0".
func CommandName(data []byte) (string, error) {
	var frame struct {
		Cmd string `json:"cmd"`
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		return "", fmt.Errorf("failed to decode frame: %w", err)
	}
	if frame.Cmd == "" {
		return "", errors.New("frame has no command")
	}

	name, _, _ := strings.Cut(frame.Cmd, ":")
	return name, nil
}
