package report

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/common/uuid"
	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/platform"
	historyRepo "github.com/KirkDiggler/starwatch/internal/repositories/history"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	statsRepo "github.com/KirkDiggler/starwatch/internal/repositories/stats"
	"github.com/rs/zerolog/log"
)

// rankingSpecs pairs each ranking with the option that requests it and the metric it reads
var rankingSpecs = []struct {
	kind   models.RankingKind
	item   models.ReportItem
	metric models.Metric
}{
	{models.RankingDanmu, models.ReportItemDanmuRanking, models.MetricDanmu},
	{models.RankingBox, models.ReportItemBoxRanking, models.MetricBox},
	{models.RankingBoxProfit, models.ReportItemBoxProfitRanking, models.MetricBoxProfit},
	{models.RankingGift, models.ReportItemGiftRanking, models.MetricGift},
	{models.RankingSC, models.ReportItemSCRanking, models.MetricSC},
}

// BeatPercent is the share of past sessions with a lower box profit.
// The ratio is rounded to four places before scaling, then to two.
func BeatPercent(rank, count int64) float64 {
	if count == 0 {
		return 100
	}

	ratio := models.RoundFixed(float64(rank)/float64(count), 4)
	return models.RoundFixed(ratio*100, 2)
}

// service implements the Service interface
type service struct {
	roomRepo    roomRepo.Repository
	statsRepo   statsRepo.Repository
	historyRepo historyRepo.Repository
	platform    platform.Client
	uuid        uuid.UUID
}

// New creates a new report service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.HistoryRepo == nil {
		return nil, ErrNilHistoryRepo
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		roomRepo:    cfg.RoomRepo,
		statsRepo:   cfg.StatsRepo,
		historyRepo: cfg.HistoryRepo,
		platform:    cfg.Platform,
		uuid:        cfg.UUID,
	}, nil
}

// Build assembles the report for the session that just ended in the streamer's room
func (s *service) Build(ctx context.Context, input *BuildInput) (*models.Report, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Streamer == nil {
		return nil, ErrNilStreamer
	}

	streamer := input.Streamer
	roomID := streamer.RoomID

	startTime, err := s.roomRepo.GetStartTime(ctx, &roomRepo.GetTimeInput{RoomID: roomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get start time: %w", err)
	}

	endTime, err := s.roomRepo.GetEndTime(ctx, &roomRepo.GetTimeInput{RoomID: roomID})
	if err != nil {
		return nil, fmt.Errorf("failed to get end time: %w", err)
	}

	report := &models.Report{
		ID:        s.uuid.NewUUID(),
		UName:     streamer.Name,
		RoomID:    roomID,
		StartTime: startTime,
		EndTime:   endTime,
		Duration:  models.NewDuration(endTime - startTime),
	}

	logger := log.With().
		Str("report_id", report.ID).
		Int64("room_id", roomID).
		Str("uname", streamer.Name).
		Logger()
	logger.Debug().Int64("start_time", startTime).Int64("end_time", endTime).Msg("Building report")

	if streamer.Wants(models.ChangeItems...) {
		report.Deltas, err = s.deltas(ctx, roomID, startTime)
		if err != nil {
			return nil, err
		}
	}

	if err := s.totals(ctx, report); err != nil {
		return nil, err
	}

	report.BoxBeatPercent, err = s.beatPercent(ctx, streamer, startTime, report.BoxProfit)
	if err != nil {
		return nil, err
	}

	for _, spec := range rankingSpecs {
		n := streamer.MaxRanking(spec.item)
		if n <= 0 {
			continue
		}

		ranking, err := s.ranking(ctx, roomID, spec.metric, n)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s ranking: %w", spec.kind, err)
		}
		if ranking == nil {
			continue
		}

		if report.Rankings == nil {
			report.Rankings = make(map[models.RankingKind]*models.Ranking)
		}
		report.Rankings[spec.kind] = ranking
	}

	if streamer.Wants(models.ReportItemGuardList) {
		report.Guards, err = s.guardRoster(ctx, roomID)
		if err != nil {
			return nil, err
		}
	}

	if streamer.Wants(models.ReportItemDanmuCloud) {
		chat, err := s.statsRepo.GetChat(ctx, &statsRepo.GetChatInput{RoomID: roomID})
		if err != nil {
			return nil, fmt.Errorf("failed to get chat log: %w", err)
		}
		if chat == nil {
			chat = []string{}
		}
		report.Danmu = chat
	}

	logger.Info().
		Int64("danmu_count", report.DanmuCount).
		Float64("box_profit", report.BoxProfit).
		Float64("box_beat_percent", report.BoxBeatPercent).
		Msg("Report built")

	return report, nil
}

// deltas compares the counts captured at session start with the room's current counts
func (s *service) deltas(ctx context.Context, roomID, startTime int64) (*models.Deltas, error) {
	before, err := s.roomRepo.GetSnapshot(ctx, &roomRepo.GetSnapshotInput{
		RoomID:    roomID,
		StartTime: startTime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get start snapshot: %w", err)
	}

	after, err := s.platform.GetRoomInfo(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get room info: %w", err)
	}

	return &models.Deltas{
		Followers: models.CountDelta{Before: before.Followers, After: after.Followers},
		FanMedals: models.CountDelta{Before: before.FanMedals, After: after.FanMedals},
		Guards:    models.CountDelta{Before: before.Guards, After: after.Guards},
	}, nil
}

// totals fills in the counters, distinct user counts and diagrams
func (s *service) totals(ctx context.Context, report *models.Report) error {
	roomID := report.RoomID

	room := func(metric models.Metric) (float64, error) {
		return s.statsRepo.GetRoom(ctx, &statsRepo.GetRoomInput{RoomID: roomID, Metric: metric})
	}
	users := func(metric models.Metric) (int64, error) {
		return s.statsRepo.CountUsers(ctx, &statsRepo.CountUsersInput{RoomID: roomID, Metric: metric})
	}
	series := func(name models.Series) ([]*models.SeriesPoint, error) {
		out, err := s.statsRepo.GetSeries(ctx, &statsRepo.GetSeriesInput{RoomID: roomID, Series: name})
		if err != nil {
			return nil, err
		}
		return out.Points, nil
	}

	var err error
	var value float64

	if value, err = room(models.MetricDanmu); err != nil {
		return fmt.Errorf("failed to get danmu count: %w", err)
	}
	report.DanmuCount = int64(value)
	if report.DanmuPersonCount, err = users(models.MetricDanmu); err != nil {
		return fmt.Errorf("failed to count danmu senders: %w", err)
	}
	if report.DanmuDiagram, err = series(models.SeriesDanmu); err != nil {
		return fmt.Errorf("failed to get danmu diagram: %w", err)
	}

	if value, err = room(models.MetricBox); err != nil {
		return fmt.Errorf("failed to get box count: %w", err)
	}
	report.BoxCount = int64(value)
	if report.BoxPersonCount, err = users(models.MetricBox); err != nil {
		return fmt.Errorf("failed to count box buyers: %w", err)
	}
	if report.BoxProfit, err = room(models.MetricBoxProfit); err != nil {
		return fmt.Errorf("failed to get box profit: %w", err)
	}
	if report.BoxProfitDiagram, err = s.statsRepo.GetBoxProfits(ctx, &statsRepo.GetBoxProfitsInput{RoomID: roomID}); err != nil {
		return fmt.Errorf("failed to get box profit diagram: %w", err)
	}
	if report.BoxDiagram, err = series(models.SeriesBox); err != nil {
		return fmt.Errorf("failed to get box diagram: %w", err)
	}

	if report.GiftProfit, err = room(models.MetricGift); err != nil {
		return fmt.Errorf("failed to get gift profit: %w", err)
	}
	if report.GiftPersonCount, err = users(models.MetricGift); err != nil {
		return fmt.Errorf("failed to count gift senders: %w", err)
	}
	if report.GiftDiagram, err = series(models.SeriesGift); err != nil {
		return fmt.Errorf("failed to get gift diagram: %w", err)
	}

	if report.SCProfit, err = room(models.MetricSC); err != nil {
		return fmt.Errorf("failed to get super chat profit: %w", err)
	}
	if report.SCPersonCount, err = users(models.MetricSC); err != nil {
		return fmt.Errorf("failed to count super chat senders: %w", err)
	}
	if report.SCDiagram, err = series(models.SeriesSC); err != nil {
		return fmt.Errorf("failed to get super chat diagram: %w", err)
	}

	guardCounts := map[models.GuardTier]*int64{
		models.GuardCaptain:   &report.CaptainCount,
		models.GuardCommander: &report.CommanderCount,
		models.GuardGovernor:  &report.GovernorCount,
	}
	for _, tier := range models.GuardTiers {
		if value, err = room(tier.Metric()); err != nil {
			return fmt.Errorf("failed to get %s count: %w", tier, err)
		}
		*guardCounts[tier] = int64(value)
	}
	if report.GuardDiagram, err = series(models.SeriesGuard); err != nil {
		return fmt.Errorf("failed to get guard diagram: %w", err)
	}

	return nil
}

// beatPercent records the session in the all-time box profit history and
// returns how many past sessions it beat. The count is taken before the insert.
func (s *service) beatPercent(ctx context.Context, streamer *models.Streamer, startTime int64, profit float64) (float64, error) {
	count, err := s.historyRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count box history: %w", err)
	}

	err = s.historyRepo.Add(ctx, &historyRepo.AddInput{
		StartTime: startTime,
		UID:       streamer.UID,
		UName:     streamer.Name,
		Profit:    profit,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add box history: %w", err)
	}

	rank, err := s.historyRepo.Rank(ctx, &historyRepo.RankInput{
		StartTime: startTime,
		UID:       streamer.UID,
		UName:     streamer.Name,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to rank box history: %w", err)
	}

	return BeatPercent(rank, count), nil
}

// ranking returns the top n users for a metric, nil when nobody contributed
func (s *service) ranking(ctx context.Context, roomID int64, metric models.Metric, n int) (*models.Ranking, error) {
	out, err := s.statsRepo.RankUsers(ctx, &statsRepo.RankUsersInput{
		RoomID: roomID,
		Metric: metric,
		Limit:  n,
	})
	if err != nil {
		return nil, err
	}

	if len(out.Entries) == 0 {
		return nil, nil
	}

	cards, err := s.platform.GetUserCards(ctx, entryUIDs(out.Entries))
	if err != nil {
		return nil, err
	}

	values := make([]float64, len(out.Entries))
	for i, entry := range out.Entries {
		values[i] = entry.Value
	}

	return &models.Ranking{
		Faces:  cards.Faces,
		Names:  cards.Names,
		Values: values,
	}, nil
}

// guardRoster lists every member bought during the session per tier, most months first
func (s *service) guardRoster(ctx context.Context, roomID int64) (map[models.GuardTier][]*models.GuardInfo, error) {
	roster := make(map[models.GuardTier][]*models.GuardInfo)

	for _, tier := range models.GuardTiers {
		out, err := s.statsRepo.RankUsers(ctx, &statsRepo.RankUsersInput{
			RoomID: roomID,
			Metric: tier.Metric(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s members: %w", tier, err)
		}

		if len(out.Entries) == 0 {
			continue
		}

		cards, err := s.platform.GetUserCards(ctx, entryUIDs(out.Entries))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s members: %w", tier, err)
		}

		infos := make([]*models.GuardInfo, len(out.Entries))
		for i, entry := range out.Entries {
			infos[i] = &models.GuardInfo{
				Face:   cards.Faces[i],
				Name:   cards.Names[i],
				Months: int64(entry.Value),
			}
		}
		roster[tier] = infos
	}

	return roster, nil
}

func entryUIDs(entries []*models.RankingEntry) []int64 {
	uids := make([]int64, len(entries))
	for i, entry := range entries {
		uids[i] = entry.UserID
	}
	return uids
}
