package models

// Streamer is one configured broadcaster and the destinations that follow it
type Streamer struct {
	// UID is the broadcaster's platform user ID
	UID int64

	// Name is the display name, refreshed from the platform on live events
	Name string

	// RoomID is the broadcast room, resolved from the platform when zero
	RoomID int64

	// Targets receive notifications for this broadcaster
	Targets []*Target
}

// Target is one notification destination, a Discord channel
type Target struct {
	// ID is the Discord channel ID
	ID string

	LiveOn     PushConfig
	LiveOff    PushConfig
	PostUpdate PushConfig
	LiveReport ReportOptions
}

// PushConfig toggles a notification and holds its message template.
// Templates may use {uname}, {title}, {url}, {cover} and {action}.
type PushConfig struct {
	Enabled bool
	Message string
}

// AnyLiveOn reports whether any target wants live-started notifications
func (s *Streamer) AnyLiveOn() bool {
	for _, t := range s.Targets {
		if t.LiveOn.Enabled {
			return true
		}
	}
	return false
}

// AnyLiveOff reports whether any target wants live-ended notifications
func (s *Streamer) AnyLiveOff() bool {
	for _, t := range s.Targets {
		if t.LiveOff.Enabled {
			return true
		}
	}
	return false
}

// AnyLiveReport reports whether any target wants an end-of-session report
func (s *Streamer) AnyLiveReport() bool {
	for _, t := range s.Targets {
		if t.LiveReport.Enabled {
			return true
		}
	}
	return false
}

// AnyPostUpdate reports whether any target wants post notifications
func (s *Streamer) AnyPostUpdate() bool {
	for _, t := range s.Targets {
		if t.PostUpdate.Enabled {
			return true
		}
	}
	return false
}

// Wants reports whether any target with an enabled report requests one of the items
func (s *Streamer) Wants(items ...ReportItem) bool {
	for _, t := range s.Targets {
		if !t.LiveReport.Enabled {
			continue
		}
		for _, item := range items {
			if t.LiveReport.Has(item) {
				return true
			}
		}
	}
	return false
}

// MaxRanking returns the largest ranking size requested for the item across targets
func (s *Streamer) MaxRanking(item ReportItem) int {
	max := 0
	for _, t := range s.Targets {
		if !t.LiveReport.Enabled {
			continue
		}
		if n := t.LiveReport.RankingSize(item); n > max {
			max = n
		}
	}
	return max
}
