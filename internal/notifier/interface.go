package notifier

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/starwatch/internal/notifier Notifier

// Notifier delivers broadcast notifications to a streamer's targets.
// Each method only reaches targets that enabled the matching notification.
type Notifier interface {
	// SendLiveStarted posts the live-on message
	SendLiveStarted(ctx context.Context, input *LiveInput) error

	// SendLiveStartedMentions pings the users who asked to be told about starts
	SendLiveStartedMentions(ctx context.Context, input *LiveInput) error

	// SendLiveEnded posts the live-off message
	SendLiveEnded(ctx context.Context, input *LiveInput) error

	// SendReport posts the end-of-session report
	SendReport(ctx context.Context, input *ReportInput) error

	// SendPostUpdate posts the new-post message
	SendPostUpdate(ctx context.Context, input *PostInput) error

	// SendPostUpdateMentions pings the users who asked to be told about posts
	SendPostUpdateMentions(ctx context.Context, input *PostInput) error

	// SendToAll posts a fixed message to every target the filter accepts
	SendToAll(ctx context.Context, input *SendToAllInput) error
}
