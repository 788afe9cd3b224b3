package models

import "time"

// RankingKind is a per-user ranking the report can include
type RankingKind string

const (
	RankingDanmu     RankingKind = "danmu"
	RankingBox       RankingKind = "box"
	RankingBoxProfit RankingKind = "box_profit"
	RankingGift      RankingKind = "gift"
	RankingSC        RankingKind = "sc"
)

// ReportTimeLayout formats session start and end times
const ReportTimeLayout = "01/02 15:04:05"

// Duration is a session length split by divmod
type Duration struct {
	Hours   int64
	Minutes int64
	Seconds int64
}

// NewDuration decomposes a number of seconds into hours, minutes and seconds
func NewDuration(seconds int64) Duration {
	minutes, secs := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	return Duration{Hours: hours, Minutes: minutes, Seconds: secs}
}

// CountDelta is a before and after pair, Before is -1 when nothing was captured at start
type CountDelta struct {
	Before int64
	After  int64
}

// Deltas compares audience counts between session start and end
type Deltas struct {
	Followers CountDelta
	FanMedals CountDelta
	Guards    CountDelta
}

// Ranking is a top-N list resolved to display names and avatars, as parallel slices
type Ranking struct {
	Faces  []string
	Names  []string
	Values []float64
}

// GuardInfo is one member of a tier roster
type GuardInfo struct {
	Face   string
	Name   string
	Months int64
}

// Report is the end-of-session summary for one room
type Report struct {
	// ID correlates log lines and notifications for one report
	ID string

	UName     string
	RoomID    int64
	StartTime int64
	EndTime   int64
	Duration  Duration

	// Deltas is nil unless a target asked for follower, fan medal or guard changes
	Deltas *Deltas

	DanmuCount       int64
	DanmuPersonCount int64
	DanmuDiagram     []*SeriesPoint

	BoxCount         int64
	BoxPersonCount   int64
	BoxProfit        float64
	BoxBeatPercent   float64
	BoxProfitDiagram []float64
	BoxDiagram       []*SeriesPoint

	GiftProfit      float64
	GiftPersonCount int64
	GiftDiagram     []*SeriesPoint

	SCProfit      float64
	SCPersonCount int64
	SCDiagram     []*SeriesPoint

	CaptainCount   int64
	CommanderCount int64
	GovernorCount  int64
	GuardDiagram   []*SeriesPoint

	// Rankings only holds non-empty rankings
	Rankings map[RankingKind]*Ranking

	// Guards only holds non-empty tiers, and is nil unless the roster was requested
	Guards map[GuardTier][]*GuardInfo

	// Danmu is the word-cloud log, nil unless requested
	Danmu []string
}

var guardInfoKeys = map[GuardTier]string{
	GuardCaptain:   "captain_infos",
	GuardCommander: "commander_infos",
	GuardGovernor:  "governor_infos",
}

// Fields renders the report as the named-field mapping used by message templates.
// Optional parts that were not built produce no keys.
func (r *Report) Fields() map[string]any {
	fields := map[string]any{
		"uname":           r.UName,
		"room_id":         r.RoomID,
		"start_timestamp": r.StartTime,
		"end_timestamp":   r.EndTime,
		"start_time":      time.Unix(r.StartTime, 0).Format(ReportTimeLayout),
		"end_time":        time.Unix(r.EndTime, 0).Format(ReportTimeLayout),
		"hour":            r.Duration.Hours,
		"minute":          r.Duration.Minutes,
		"second":          r.Duration.Seconds,

		"danmu_count":        r.DanmuCount,
		"danmu_person_count": r.DanmuPersonCount,
		"danmu_diagram":      r.DanmuDiagram,
		"box_count":          r.BoxCount,
		"box_person_count":   r.BoxPersonCount,
		"box_profit":         r.BoxProfit,
		"box_beat_percent":   r.BoxBeatPercent,
		"box_profit_diagram": r.BoxProfitDiagram,
		"box_diagram":        r.BoxDiagram,
		"gift_profit":        r.GiftProfit,
		"gift_person_count":  r.GiftPersonCount,
		"gift_diagram":       r.GiftDiagram,
		"sc_profit":          r.SCProfit,
		"sc_person_count":    r.SCPersonCount,
		"sc_diagram":         r.SCDiagram,
		"captain_count":      r.CaptainCount,
		"commander_count":    r.CommanderCount,
		"governor_count":     r.GovernorCount,
		"guard_diagram":      r.GuardDiagram,
	}

	if r.Deltas != nil {
		fields["fans_before"] = r.Deltas.Followers.Before
		fields["fans_after"] = r.Deltas.Followers.After
		fields["fans_medal_before"] = r.Deltas.FanMedals.Before
		fields["fans_medal_after"] = r.Deltas.FanMedals.After
		fields["guard_before"] = r.Deltas.Guards.Before
		fields["guard_after"] = r.Deltas.Guards.After
	}

	for kind, ranking := range r.Rankings {
		if ranking == nil || len(ranking.Values) == 0 {
			continue
		}
		prefix := string(kind) + "_ranking"
		fields[prefix+"_faces"] = ranking.Faces
		fields[prefix+"_unames"] = ranking.Names
		fields[prefix+"_counts"] = ranking.Values
	}

	for tier, infos := range r.Guards {
		if len(infos) == 0 {
			continue
		}
		rows := make([][]any, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []any{info.Face, info.Name, info.Months})
		}
		fields[guardInfoKeys[tier]] = rows
	}

	if r.Danmu != nil {
		fields["all_danmu"] = r.Danmu
	}

	return fields
}
