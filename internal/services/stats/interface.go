package stats

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/starwatch/internal/services/stats Service

// Service turns room events into session counters
type Service interface {
	// RecordChat counts a chat message and logs it for the word cloud when eligible
	RecordChat(ctx context.Context, input *RecordChatInput) error

	// RecordGift accounts gift revenue and mystery box profit
	RecordGift(ctx context.Context, input *RecordGiftInput) (*RecordGiftOutput, error)

	// RecordSuperChat accounts a paid message
	RecordSuperChat(ctx context.Context, input *RecordSuperChatInput) error

	// RecordGuard counts membership months bought
	RecordGuard(ctx context.Context, input *RecordGuardInput) error
}
