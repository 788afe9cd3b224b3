package posts

import (
	"time"

	"github.com/KirkDiggler/starwatch/internal/platform"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
)

// Config holds configuration for the post poller
type Config struct {
	Platform platform.Client

	// RoomRepo remembers the newest post seen per broadcaster
	RoomRepo roomRepo.Repository

	Subscribers []Subscriber

	// Interval between polls, defaults to a minute
	Interval time.Duration
}
