package history

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/starwatch/internal/repositories/history Repository

// Repository keeps one box profit entry per finished session across all rooms
type Repository interface {
	// Count returns the number of recorded sessions
	Count(ctx context.Context) (int64, error)

	// Add records a session's box profit
	Add(ctx context.Context, input *AddInput) error

	// Rank returns the 0-based position of a session, lowest profit first
	Rank(ctx context.Context, input *RankInput) (int64, error)
}
