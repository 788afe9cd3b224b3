package posts

import (
	"context"

	"github.com/KirkDiggler/starwatch/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_subscriber.go github.com/KirkDiggler/starwatch/internal/services/posts Subscriber

// Subscriber receives the new posts of one broadcaster
type Subscriber interface {
	// UID returns the broadcaster's platform user ID
	UID() int64

	// DispatchPost hands over a post not seen before
	DispatchPost(ctx context.Context, post *models.Post) error
}

// Service polls broadcasters for new posts
type Service interface {
	// Run polls on every interval until ctx is cancelled
	Run(ctx context.Context) error

	// Poll checks every subscriber's broadcaster once
	Poll(ctx context.Context) error
}
