package feed

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_feed.go github.com/KirkDiggler/starwatch/internal/feed Feed

// Status is the state of the feed's transport link
type Status int

const (
	StatusConnecting Status = iota
	StatusConnected
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	default:
		return "closed"
	}
}

// EventLinked is dispatched every time the transport link is established
const EventLinked = "VERIFICATION_SUCCESSFUL"

// Event is one named message from a room's feed
type Event struct {
	Name string

	// Raw is the undecoded frame, empty for synthetic events
	Raw []byte
}

// Handler processes one event. Handlers for a feed run one at a time, in arrival order.
type Handler func(ctx context.Context, event *Event) error

// Feed delivers a room's real-time events
type Feed interface {
	// Connect runs the feed until ctx is cancelled, reconnecting after link failures
	Connect(ctx context.Context) error

	// On registers the handler for an event name, replacing any earlier one
	On(name string, handler Handler)

	// Dispatch queues an event behind the ones already received
	Dispatch(ctx context.Context, event *Event) error

	// Status returns the current link state
	Status() Status
}
