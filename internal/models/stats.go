package models

// Metric is a per-session accumulator kept for each room and each user in it
type Metric string

const (
	MetricDanmu     Metric = "danmu"
	MetricBox       Metric = "box"
	MetricBoxProfit Metric = "box_profit"
	MetricGift      Metric = "gift"
	MetricSC        Metric = "sc"
	MetricCaptain   Metric = "captain"
	MetricCommander Metric = "commander"
	MetricGovernor  Metric = "governor"
)

// AllMetrics lists every session metric, in archive order
var AllMetrics = []Metric{
	MetricDanmu, MetricBox, MetricBoxProfit, MetricGift,
	MetricSC, MetricCaptain, MetricCommander, MetricGovernor,
}

// Series is a per-session time series used for report diagrams
type Series string

const (
	SeriesDanmu Series = "danmu"
	SeriesBox   Series = "box"
	SeriesGift  Series = "gift"
	SeriesSC    Series = "sc"
	SeriesGuard Series = "guard"
)

// AllSeries lists every session time series
var AllSeries = []Series{SeriesDanmu, SeriesBox, SeriesGift, SeriesSC, SeriesGuard}

// GuardTier is one of the three paid membership levels
type GuardTier string

const (
	GuardCaptain   GuardTier = "Captain"
	GuardCommander GuardTier = "Commander"
	GuardGovernor  GuardTier = "Governor"
)

// GuardTiers lists the tiers from lowest to highest
var GuardTiers = []GuardTier{GuardCaptain, GuardCommander, GuardGovernor}

var guardLabels = map[string]GuardTier{
	"舰长": GuardCaptain,
	"提督": GuardCommander,
	"总督": GuardGovernor,
}

// GuardTierFromLabel maps the platform's gift name to a tier
func GuardTierFromLabel(label string) (GuardTier, bool) {
	tier, ok := guardLabels[label]
	return tier, ok
}

// Metric returns the accumulator that counts months bought at this tier
func (t GuardTier) Metric() Metric {
	switch t {
	case GuardCommander:
		return MetricCommander
	case GuardGovernor:
		return MetricGovernor
	default:
		return MetricCaptain
	}
}

// RankingEntry is one user's accumulated value in a per-room ranking
type RankingEntry struct {
	UserID int64
	Value  float64
}

// SeriesPoint is one time bucket of a diagram series
type SeriesPoint struct {
	Timestamp int64
	Value     float64
}
