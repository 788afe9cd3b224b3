package models

// MentionKind selects which announcement a mention list belongs to
type MentionKind string

const (
	// MentionLiveOn users are pinged when a broadcast starts
	MentionLiveOn MentionKind = "live_on"

	// MentionPost users are pinged when a post is published
	MentionPost MentionKind = "post"
)
