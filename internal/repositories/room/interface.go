package room

import (
	"context"

	"github.com/KirkDiggler/starwatch/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/starwatch/internal/repositories/room Repository

// Repository persists each room's session state across restarts
type Repository interface {
	// GetStatus returns the last persisted status, LiveStatusUnknown if none
	GetStatus(ctx context.Context, input *GetStatusInput) (models.LiveStatus, error)

	// SetStatus persists the room status
	SetStatus(ctx context.Context, input *SetStatusInput) error

	// GetStartTime returns the session start time, zero if none
	GetStartTime(ctx context.Context, input *GetTimeInput) (int64, error)

	// SetStartTime persists the session start time
	SetStartTime(ctx context.Context, input *SetTimeInput) error

	// GetEndTime returns the last session end time, zero if none
	GetEndTime(ctx context.Context, input *GetTimeInput) (int64, error)

	// SetEndTime persists the session end time
	SetEndTime(ctx context.Context, input *SetTimeInput) error

	// SaveSnapshot stores the audience counts captured at a session start
	SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error

	// SnapshotExists reports whether any count was captured for a session start
	SnapshotExists(ctx context.Context, input *GetSnapshotInput) (bool, error)

	// GetSnapshot returns the counts for a session start, -1 for each count not captured
	GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.Snapshot, error)

	// GetLastPostID returns the newest post seen for a broadcaster
	GetLastPostID(ctx context.Context, input *GetLastPostIDInput) (int64, error)

	// SetLastPostID records the newest post seen for a broadcaster
	SetLastPostID(ctx context.Context, input *SetLastPostIDInput) error
}
