package monitor

import (
	"context"

	"github.com/KirkDiggler/starwatch/internal/models"
)

// Service watches one broadcaster's room for the lifetime of the process
type Service interface {
	// Connect resolves the room, registers event handlers and runs the feed
	// until ctx is cancelled. It returns nil at once when the room is skipped.
	Connect(ctx context.Context) error

	// DispatchPost queues a new post behind the room's other events
	DispatchPost(ctx context.Context, post *models.Post) error

	// UID returns the broadcaster's platform user ID
	UID() int64

	// Linked is closed once the room's feed has linked for the first time
	Linked() <-chan struct{}
}
