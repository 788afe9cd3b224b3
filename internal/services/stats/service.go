package stats

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/common/clock"
	"github.com/KirkDiggler/starwatch/internal/models"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
	"github.com/shopspring/decimal"
)

// GiftPrice is the revenue of a gift: discountPrice/1000 * num, rounded to one decimal
func GiftPrice(discountPrice, num int64) decimal.Decimal {
	price := float64(discountPrice) / 1000 * float64(num)
	return decimal.NewFromFloat(models.RoundFixed(price, 1))
}

// BoxProfit is what a mystery box buyer gained: the value of the gifts
// received minus what the boxes cost, rounded to one decimal
func BoxProfit(discountPrice, num, totalCoin int64) decimal.Decimal {
	unitPrice := float64(discountPrice) / 1000
	boxCost := float64(totalCoin) / 1000
	return decimal.NewFromFloat(models.RoundFixed(unitPrice*float64(num)-boxCost, 1))
}

// service implements the Service interface
type service struct {
	statsRepo statsRepo.Repository
	clock     clock.Clock
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		statsRepo: cfg.StatsRepo,
		clock:     cfg.Clock,
	}, nil
}

// incr adds the same amount to the room counter and the user's ranking entry,
// returning the room's new total
func (s *service) incr(ctx context.Context, roomID, userID int64, metric models.Metric, amount float64) (float64, error) {
	total, err := s.statsRepo.IncrRoom(ctx, &statsRepo.IncrRoomInput{
		RoomID: roomID,
		Metric: metric,
		Amount: amount,
	})
	if err != nil {
		return 0, err
	}

	_, err = s.statsRepo.IncrUser(ctx, &statsRepo.IncrUserInput{
		RoomID: roomID,
		Metric: metric,
		UserID: userID,
		Amount: amount,
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (s *service) addPoint(ctx context.Context, roomID int64, series models.Series, amount float64) error {
	return s.statsRepo.AddTimePoint(ctx, &statsRepo.AddTimePointInput{
		RoomID:    roomID,
		Series:    series,
		Timestamp: s.clock.Now().Unix(),
		Amount:    amount,
	})
}

// RecordChat counts a chat message and logs it for the word cloud when eligible
func (s *service) RecordChat(ctx context.Context, input *RecordChatInput) error {
	if input == nil || input.Chat == nil {
		return ErrNilInput
	}

	if _, err := s.incr(ctx, input.RoomID, input.Chat.UserID, models.MetricDanmu, 1); err != nil {
		return fmt.Errorf("failed to count chat: %w", err)
	}

	if !input.Chat.CloudEligible {
		return nil
	}

	err := s.statsRepo.AppendChat(ctx, &statsRepo.AppendChatInput{
		RoomID:  input.RoomID,
		Content: input.Chat.Content,
	})
	if err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}

	if err := s.addPoint(ctx, input.RoomID, models.SeriesDanmu, 1); err != nil {
		return fmt.Errorf("failed to add chat time point: %w", err)
	}

	return nil
}

// RecordGift accounts gift revenue and mystery box profit
func (s *service) RecordGift(ctx context.Context, input *RecordGiftInput) (*RecordGiftOutput, error) {
	if input == nil || input.Gift == nil {
		return nil, ErrNilInput
	}

	gift := input.Gift
	price := GiftPrice(gift.DiscountPrice, gift.Num).InexactFloat64()
	output := &RecordGiftOutput{Price: price}

	// Free gifts carry no coin value
	if gift.TotalCoin != 0 && gift.DiscountPrice != 0 {
		if _, err := s.incr(ctx, input.RoomID, gift.UserID, models.MetricGift, price); err != nil {
			return nil, fmt.Errorf("failed to record gift revenue: %w", err)
		}
		if err := s.addPoint(ctx, input.RoomID, models.SeriesGift, price); err != nil {
			return nil, fmt.Errorf("failed to add gift time point: %w", err)
		}
		output.Recorded = true
	}

	if !gift.BlindBox {
		return output, nil
	}

	profit := BoxProfit(gift.DiscountPrice, gift.Num, gift.TotalCoin).InexactFloat64()
	output.BoxProfit = profit

	if _, err := s.incr(ctx, input.RoomID, gift.UserID, models.MetricBox, float64(gift.Num)); err != nil {
		return nil, fmt.Errorf("failed to count boxes: %w", err)
	}

	total, err := s.incr(ctx, input.RoomID, gift.UserID, models.MetricBoxProfit, profit)
	if err != nil {
		return nil, fmt.Errorf("failed to record box profit: %w", err)
	}
	output.BoxProfitTotal = total

	err = s.statsRepo.AppendBoxProfit(ctx, &statsRepo.AppendBoxProfitInput{
		RoomID: input.RoomID,
		Total:  total,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to append box profit: %w", err)
	}

	if err := s.addPoint(ctx, input.RoomID, models.SeriesBox, 1); err != nil {
		return nil, fmt.Errorf("failed to add box time point: %w", err)
	}

	return output, nil
}

// RecordSuperChat accounts a paid message
func (s *service) RecordSuperChat(ctx context.Context, input *RecordSuperChatInput) error {
	if input == nil || input.SuperChat == nil {
		return ErrNilInput
	}

	sc := input.SuperChat
	if _, err := s.incr(ctx, input.RoomID, sc.UserID, models.MetricSC, sc.Price); err != nil {
		return fmt.Errorf("failed to record super chat: %w", err)
	}

	if err := s.addPoint(ctx, input.RoomID, models.SeriesSC, sc.Price); err != nil {
		return fmt.Errorf("failed to add super chat time point: %w", err)
	}

	return nil
}

// RecordGuard counts membership months bought
func (s *service) RecordGuard(ctx context.Context, input *RecordGuardInput) error {
	if input == nil || input.Guard == nil {
		return ErrNilInput
	}

	guard := input.Guard
	switch guard.Tier {
	case models.GuardCaptain, models.GuardCommander, models.GuardGovernor:
	default:
		return ErrUnknownGuard
	}

	months := float64(guard.Months)
	if _, err := s.incr(ctx, input.RoomID, guard.UserID, guard.Tier.Metric(), months); err != nil {
		return fmt.Errorf("failed to record guard: %w", err)
	}

	if err := s.addPoint(ctx, input.RoomID, models.SeriesGuard, months); err != nil {
		return fmt.Errorf("failed to add guard time point: %w", err)
	}

	return nil
}
