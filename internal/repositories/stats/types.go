package stats

import "github.com/KirkDiggler/starwatch/internal/models"

// IncrRoomInput contains parameters for incrementing a room counter
type IncrRoomInput struct {
	RoomID int64
	Metric models.Metric
	Amount float64
}

// IncrUserInput contains parameters for incrementing a user's ranking value
type IncrUserInput struct {
	RoomID int64
	Metric models.Metric
	UserID int64
	Amount float64
}

// GetRoomInput contains parameters for reading a room counter
type GetRoomInput struct {
	RoomID int64
	Metric models.Metric
}

// CountUsersInput contains parameters for counting contributing users
type CountUsersInput struct {
	RoomID int64
	Metric models.Metric
}

// RankUsersInput contains parameters for reading a ranking
type RankUsersInput struct {
	RoomID int64
	Metric models.Metric

	// Limit caps the number of entries, zero or less returns all of them
	Limit int
}

// RankUsersOutput contains a ranking, highest value first
type RankUsersOutput struct {
	Entries []*models.RankingEntry
}

// AddTimePointInput contains parameters for adding to a time series
type AddTimePointInput struct {
	RoomID    int64
	Series    models.Series
	Timestamp int64
	Amount    float64
}

// GetSeriesInput contains parameters for reading a time series
type GetSeriesInput struct {
	RoomID int64
	Series models.Series
}

// GetSeriesOutput contains a time series ordered by timestamp
type GetSeriesOutput struct {
	Points []*models.SeriesPoint
}

// AppendBoxProfitInput contains parameters for recording the running box profit
type AppendBoxProfitInput struct {
	RoomID int64
	Total  float64
}

// GetBoxProfitsInput contains parameters for reading the running box profit values
type GetBoxProfitsInput struct {
	RoomID int64
}

// AppendChatInput contains parameters for logging a chat message
type AppendChatInput struct {
	RoomID  int64
	Content string
}

// GetChatInput contains parameters for reading the chat log
type GetChatInput struct {
	RoomID int64
}

// ArchiveAndResetInput contains parameters for closing out a room's session counters
type ArchiveAndResetInput struct {
	RoomID int64
}
