package mention

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/starwatch/internal/repositories/mention Repository

// Repository keeps the users each channel mentions on announcements
type Repository interface {
	// Add puts a user on a channel's list, reporting whether they were newly added
	Add(ctx context.Context, input *ChangeInput) (bool, error)

	// Remove takes a user off a channel's list, reporting whether they were on it
	Remove(ctx context.Context, input *ChangeInput) (bool, error)

	// List returns a channel's list in a stable order
	List(ctx context.Context, input *ListInput) ([]string, error)
}
