package models

// ChatEvent is a danmaku message
type ChatEvent struct {
	UserID  int64
	Content string

	// CloudEligible is set for plain text messages, the ones kept for the word cloud
	CloudEligible bool
}

// GiftEvent is a gift sent in the room. Prices are in thousandths of the display currency.
type GiftEvent struct {
	UserID        int64
	GiftName      string
	Num           int64
	DiscountPrice int64
	TotalCoin     int64

	// BlindBox is set when the gift came out of a mystery box
	BlindBox bool
}

// SuperChatEvent is a paid pinned message
type SuperChatEvent struct {
	UserID int64
	Price  float64
}

// GuardBuyEvent is a membership purchase
type GuardBuyEvent struct {
	UserID int64
	Tier   GuardTier
	Months int64
}

// LiveStartEvent is a broadcast start notice.
// The platform sends several LIVE frames per start; only the one carrying a start time counts.
type LiveStartEvent struct {
	HasStartTime bool
	StartTime    int64
}
