package models

// LiveStatus is a room's broadcast state as the platform reports it
type LiveStatus int

const (
	// LiveStatusUnknown means nothing has been persisted for the room yet
	LiveStatusUnknown LiveStatus = -1

	// LiveStatusOff means the room is not broadcasting
	LiveStatusOff LiveStatus = 0

	// LiveStatusLive means the room is on air
	LiveStatusLive LiveStatus = 1

	// LiveStatusRound means the room is replaying old videos, which counts as off air
	LiveStatusRound LiveStatus = 2
)

func (s LiveStatus) String() string {
	switch s {
	case LiveStatusOff:
		return "off"
	case LiveStatusLive:
		return "live"
	case LiveStatusRound:
		return "round"
	default:
		return "unknown"
	}
}

// Snapshot holds the audience counts captured when a session starts.
// A value of -1 means it was never captured.
type Snapshot struct {
	Followers int64
	FanMedals int64
	Guards    int64
}

// MissingSnapshot is returned when no snapshot exists for a session start
var MissingSnapshot = Snapshot{Followers: -1, FanMedals: -1, Guards: -1}

// RoomInfo is the platform's description of a broadcast room
type RoomInfo struct {
	RoomID    int64
	UID       int64
	Name      string
	Title     string
	Cover     string
	StartTime int64
	Status    LiveStatus

	Followers int64
	FanMedals int64
	Guards    int64
}
