package stats

import (
	"github.com/KirkDiggler/starwatch/internal/common/clock"
	"github.com/KirkDiggler/starwatch/internal/models"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
)

// Config holds configuration for the stats service
type Config struct {
	// Repository dependencies
	StatsRepo statsRepo.Repository

	// Clock stamps time series points
	Clock clock.Clock
}

// RecordChatInput contains parameters for recording a chat message
type RecordChatInput struct {
	RoomID int64
	Chat   *models.ChatEvent
}

// RecordGiftInput contains parameters for recording a gift
type RecordGiftInput struct {
	RoomID int64
	Gift   *models.GiftEvent
}

// RecordGiftOutput contains what a gift was worth
type RecordGiftOutput struct {
	// Price is the gift revenue, zero when the gift was free
	Price float64

	// Recorded is true when the gift counted towards revenue
	Recorded bool

	// BoxProfit is the sender's profit on a mystery box, zero for regular gifts
	BoxProfit float64

	// BoxProfitTotal is the room's running box profit after this gift
	BoxProfitTotal float64
}

// RecordSuperChatInput contains parameters for recording a paid message
type RecordSuperChatInput struct {
	RoomID    int64
	SuperChat *models.SuperChatEvent
}

// RecordGuardInput contains parameters for recording a membership purchase
type RecordGuardInput struct {
	RoomID int64
	Guard  *models.GuardBuyEvent
}
