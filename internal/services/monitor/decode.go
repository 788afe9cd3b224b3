package monitor

import (
	"bytes"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/feed"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/goccy/go-json"
)

// The chat metadata slot that holds a string only for plain text messages
const chatCloudMarkerIndex = 13

func malformed(event string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformedEvent, event, err)
}

func decodeLive(raw []byte) (*models.LiveStartEvent, error) {
	var frame struct {
		LiveTime json.RawMessage `json:"live_time"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, malformed("LIVE", err)
	}

	event := &models.LiveStartEvent{HasStartTime: len(frame.LiveTime) > 0}
	if event.HasStartTime {
		// Zero when the value is null or not a number
		_ = json.Unmarshal(frame.LiveTime, &event.StartTime)
	}

	return event, nil
}

func decodeChat(raw []byte) (*models.ChatEvent, error) {
	var frame struct {
		Info []json.RawMessage `json:"info"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, malformed("DANMU_MSG", err)
	}

	if len(frame.Info) < 3 {
		return nil, malformed("DANMU_MSG", fmt.Errorf("info has %d entries", len(frame.Info)))
	}

	var meta []json.RawMessage
	if err := json.Unmarshal(frame.Info[0], &meta); err != nil {
		return nil, malformed("DANMU_MSG", err)
	}

	var content string
	if err := json.Unmarshal(frame.Info[1], &content); err != nil {
		return nil, malformed("DANMU_MSG", err)
	}

	var user []json.RawMessage
	if err := json.Unmarshal(frame.Info[2], &user); err != nil {
		return nil, malformed("DANMU_MSG", err)
	}
	if len(user) == 0 {
		return nil, malformed("DANMU_MSG", fmt.Errorf("missing sender"))
	}

	var uid int64
	if err := json.Unmarshal(user[0], &uid); err != nil {
		return nil, malformed("DANMU_MSG", err)
	}

	eligible := len(meta) > chatCloudMarkerIndex &&
		bytes.HasPrefix(bytes.TrimSpace(meta[chatCloudMarkerIndex]), []byte(`"`))

	return &models.ChatEvent{
		UserID:        uid,
		Content:       content,
		CloudEligible: eligible,
	}, nil
}

func decodeGift(raw []byte) (*models.GiftEvent, error) {
	var frame struct {
		Data *struct {
			UID           int64           `json:"uid"`
			GiftName      string          `json:"giftName"`
			Num           int64           `json:"num"`
			DiscountPrice int64           `json:"discount_price"`
			TotalCoin     int64           `json:"total_coin"`
			BlindGift     json.RawMessage `json:"blind_gift"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, malformed("SEND_GIFT", err)
	}

	if frame.Data == nil {
		return nil, malformed("SEND_GIFT", fmt.Errorf("missing data"))
	}

	d := frame.Data
	return &models.GiftEvent{
		UserID:        d.UID,
		GiftName:      d.GiftName,
		Num:           d.Num,
		DiscountPrice: d.DiscountPrice,
		TotalCoin:     d.TotalCoin,
		BlindBox:      len(d.BlindGift) > 0 && !bytes.Equal(bytes.TrimSpace(d.BlindGift), []byte("null")),
	}, nil
}

func decodeSuperChat(raw []byte) (*models.SuperChatEvent, error) {
	var frame struct {
		Data *struct {
			UID   int64   `json:"uid"`
			Price float64 `json:"price"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, malformed("SUPER_CHAT_MESSAGE", err)
	}

	if frame.Data == nil {
		return nil, malformed("SUPER_CHAT_MESSAGE", fmt.Errorf("missing data"))
	}

	return &models.SuperChatEvent{
		UserID: frame.Data.UID,
		Price:  frame.Data.Price,
	}, nil
}

func decodeGuard(raw []byte) (*models.GuardBuyEvent, error) {
	var frame struct {
		Data *struct {
			UID      int64  `json:"uid"`
			GiftName string `json:"gift_name"`
			Num      int64  `json:"num"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, malformed("GUARD_BUY", err)
	}

	if frame.Data == nil {
		return nil, malformed("GUARD_BUY", fmt.Errorf("missing data"))
	}

	tier, ok := models.GuardTierFromLabel(frame.Data.GiftName)
	if !ok {
		return nil, malformed("GUARD_BUY", fmt.Errorf("unknown tier %q", frame.Data.GiftName))
	}

	return &models.GuardBuyEvent{
		UserID: frame.Data.UID,
		Tier:   tier,
		Months: frame.Data.Num,
	}, nil
}

// postFrame is the DYNAMIC_UPDATE command carrying a post
type postFrame struct {
	Cmd  string       `json:"cmd"`
	Desc *models.Post `json:"desc"`
}

func decodePost(raw []byte) (*models.Post, error) {
	var frame postFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, malformed("DYNAMIC_UPDATE", err)
	}

	if frame.Desc == nil {
		return nil, malformed("DYNAMIC_UPDATE", fmt.Errorf("missing desc"))
	}

	return frame.Desc, nil
}

// NewPostEvent wraps a post into the event the monitor's router handles
func NewPostEvent(post *models.Post) (*feed.Event, error) {
	raw, err := json.Marshal(&postFrame{Cmd: eventNames[EventPostUpdate], Desc: post})
	if err != nil {
		return nil, fmt.Errorf("failed to encode post: %w", err)
	}

	return &feed.Event{Name: eventNames[EventPostUpdate], Raw: raw}, nil
}
