package room

import "github.com/KirkDiggler/starwatch/internal/models"

// GetStatusInput contains parameters for reading a room status
type GetStatusInput struct {
	RoomID int64
}

// SetStatusInput contains parameters for persisting a room status
type SetStatusInput struct {
	RoomID int64
	Status models.LiveStatus
}

// GetTimeInput contains parameters for reading a session time
type GetTimeInput struct {
	RoomID int64
}

// SetTimeInput contains parameters for persisting a session time
type SetTimeInput struct {
	RoomID int64

	// Timestamp is in unix seconds
	Timestamp int64
}

// SaveSnapshotInput contains parameters for storing a session start snapshot
type SaveSnapshotInput struct {
	RoomID    int64
	StartTime int64
	Snapshot  *models.Snapshot
}

// GetSnapshotInput contains parameters for reading a session start snapshot
type GetSnapshotInput struct {
	RoomID    int64
	StartTime int64
}

// GetLastPostIDInput contains parameters for reading the newest seen post
type GetLastPostIDInput struct {
	UID int64
}

// SetLastPostIDInput contains parameters for recording the newest seen post
type SetLastPostIDInput struct {
	UID    int64
	PostID int64
}
