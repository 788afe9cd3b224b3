package monitor

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/feed"
	"github.com/KirkDiggler/starwatch/internal/models"
)

// EventKind is a feed event the monitor can handle
type EventKind int

const (
	EventLink EventKind = iota
	EventLive
	EventPreparing
	EventDanmu
	EventGift
	EventSuperChat
	EventGuardBuy
	EventPostUpdate
)

var eventNames = map[EventKind]string{
	EventLink:       feed.EventLinked,
	EventLive:       "LIVE",
	EventPreparing:  "PREPARING",
	EventDanmu:      "DANMU_MSG",
	EventGift:       "SEND_GIFT",
	EventSuperChat:  "SUPER_CHAT_MESSAGE",
	EventGuardBuy:   "GUARD_BUY",
	EventPostUpdate: "DYNAMIC_UPDATE",
}

// String returns the feed event name
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type eventHandler func(ctx context.Context, event *feed.Event) error

// route binds one event kind to its handler
type route struct {
	kind   EventKind
	handle eventHandler
}

// HandledEvents lists the events a room's monitor subscribes to. Session events
// are always handled; stats events only when a report can use them, unless the gate is off.
func HandledEvents(streamer *models.Streamer, settings Settings) []EventKind {
	kinds := []EventKind{EventLink, EventLive, EventPreparing}

	wanted := func(items []models.ReportItem) bool {
		return !settings.OnlyHandleNecessaryEvents || streamer.Wants(items...)
	}

	if wanted(models.DanmuItems) {
		kinds = append(kinds, EventDanmu)
	}
	if wanted(models.GiftItems) {
		kinds = append(kinds, EventGift)
	}
	if wanted(models.SCItems) {
		kinds = append(kinds, EventSuperChat)
	}
	if wanted(models.GuardItems) {
		kinds = append(kinds, EventGuardBuy)
	}
	if streamer.AnyPostUpdate() {
		kinds = append(kinds, EventPostUpdate)
	}

	return kinds
}

// Necessary reports whether any target wants something the room feed delivers
func Necessary(streamer *models.Streamer) bool {
	return streamer.AnyLiveOn() || streamer.AnyLiveOff() || streamer.AnyLiveReport() || streamer.AnyPostUpdate()
}

// routes builds the handler table for the room
func (m *monitor) routes() []route {
	handlers := map[EventKind]eventHandler{
		EventLink:       m.onLink,
		EventLive:       m.onLive,
		EventPreparing:  m.onPreparing,
		EventDanmu:      m.onDanmu,
		EventGift:       m.onGift,
		EventSuperChat:  m.onSuperChat,
		EventGuardBuy:   m.onGuardBuy,
		EventPostUpdate: m.onPostUpdate,
	}

	kinds := HandledEvents(m.streamer, m.settings)
	table := make([]route, 0, len(kinds))
	for _, kind := range kinds {
		table = append(table, route{kind, handlers[kind]})
	}

	return table
}

// register installs the handler table on a feed
func (m *monitor) register(f feed.Feed) {
	for _, r := range m.routes() {
		f.On(r.kind.String(), m.wrap(r))
	}
}

// wrap isolates a handler: a pending reconcile runs first, and a panic becomes an error
func (m *monitor) wrap(r route) feed.Handler {
	return func(ctx context.Context, event *feed.Event) (err error) {
		defer func() {
			if p := recover(); p != nil {
				m.logger.Error().
					Str("event", event.Name).
					Interface("panic", p).
					Msg("Event handler panicked")
				err = fmt.Errorf("%s handler panicked: %v", event.Name, p)
			}
		}()

		m.logger.Debug().Str("event", event.Name).Bytes("raw", event.Raw).Msg("Event received")

		if r.kind != EventLink && m.state.pendingReconcile {
			if err := m.reconcile(ctx); err != nil {
				m.logger.Warn().Err(err).Msg("Deferred reconcile failed")
			}
		}

		if err := r.handle(ctx, event); err != nil {
			return fmt.Errorf("failed to handle %s: %w", event.Name, err)
		}

		return nil
	}
}
