package stats

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/starwatch/internal/repositories/stats Repository

// Repository stores per-session engagement counters for each room
type Repository interface {
	// IncrRoom adds to a room counter and returns the new total
	IncrRoom(ctx context.Context, input *IncrRoomInput) (float64, error)

	// IncrUser adds to a user's value in a room ranking and returns the new value
	IncrUser(ctx context.Context, input *IncrUserInput) (float64, error)

	// GetRoom reads a room counter, zero when it was never incremented
	GetRoom(ctx context.Context, input *GetRoomInput) (float64, error)

	// CountUsers returns how many distinct users contributed to a metric
	CountUsers(ctx context.Context, input *CountUsersInput) (int64, error)

	// RankUsers returns users ordered by value, highest first
	RankUsers(ctx context.Context, input *RankUsersInput) (*RankUsersOutput, error)

	// AddTimePoint adds to the bucket of a time series for a timestamp
	AddTimePoint(ctx context.Context, input *AddTimePointInput) error

	// GetSeries returns a time series ordered by timestamp
	GetSeries(ctx context.Context, input *GetSeriesInput) (*GetSeriesOutput, error)

	// AppendBoxProfit records the room's running box profit after a box is opened
	AppendBoxProfit(ctx context.Context, input *AppendBoxProfitInput) error

	// GetBoxProfits returns the running box profit values in order
	GetBoxProfits(ctx context.Context, input *GetBoxProfitsInput) ([]float64, error)

	// AppendChat adds a message to the room's word-cloud log
	AppendChat(ctx context.Context, input *AppendChatInput) error

	// GetChat returns the room's word-cloud log
	GetChat(ctx context.Context, input *GetChatInput) ([]string, error)

	// ArchiveAndReset folds the session counters into all-time totals and clears the session
	ArchiveAndReset(ctx context.Context, input *ArchiveAndResetInput) error
}
