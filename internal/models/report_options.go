package models

// ReportItem names one optional part of the end-of-session report
type ReportItem int

const (
	ReportItemFansChange ReportItem = iota
	ReportItemFansMedalChange
	ReportItemGuardChange
	ReportItemDanmu
	ReportItemBox
	ReportItemGift
	ReportItemSC
	ReportItemGuard
	ReportItemDanmuRanking
	ReportItemBoxRanking
	ReportItemBoxProfitRanking
	ReportItemGiftRanking
	ReportItemSCRanking
	ReportItemGuardList
	ReportItemBoxProfitDiagram
	ReportItemDanmuDiagram
	ReportItemBoxDiagram
	ReportItemGiftDiagram
	ReportItemSCDiagram
	ReportItemGuardDiagram
	ReportItemDanmuCloud
)

// Item groups gating which feed events are worth handling
var (
	DanmuItems = []ReportItem{ReportItemDanmu, ReportItemDanmuRanking, ReportItemDanmuDiagram, ReportItemDanmuCloud}
	GiftItems  = []ReportItem{
		ReportItemBox, ReportItemGift, ReportItemBoxRanking, ReportItemBoxProfitRanking,
		ReportItemGiftRanking, ReportItemBoxProfitDiagram, ReportItemBoxDiagram, ReportItemGiftDiagram,
	}
	SCItems     = []ReportItem{ReportItemSC, ReportItemSCRanking, ReportItemSCDiagram}
	GuardItems  = []ReportItem{ReportItemGuard, ReportItemGuardList, ReportItemGuardDiagram}
	ChangeItems = []ReportItem{ReportItemFansChange, ReportItemFansMedalChange, ReportItemGuardChange}
)

// ReportOptions selects what a target's end-of-session report contains
type ReportOptions struct {
	Enabled bool

	FansChange      bool
	FansMedalChange bool
	GuardChange     bool

	Danmu bool
	Box   bool
	Gift  bool
	SC    bool
	Guard bool

	// Ranking sizes, zero disables the ranking
	DanmuRanking     int
	BoxRanking       int
	BoxProfitRanking int
	GiftRanking      int
	SCRanking        int

	GuardList bool

	BoxProfitDiagram bool
	DanmuDiagram     bool
	BoxDiagram       bool
	GiftDiagram      bool
	SCDiagram        bool
	GuardDiagram     bool

	DanmuCloud bool
}

// Has reports whether the item is switched on. It ignores Enabled.
func (o ReportOptions) Has(item ReportItem) bool {
	switch item {
	case ReportItemFansChange:
		return o.FansChange
	case ReportItemFansMedalChange:
		return o.FansMedalChange
	case ReportItemGuardChange:
		return o.GuardChange
	case ReportItemDanmu:
		return o.Danmu
	case ReportItemBox:
		return o.Box
	case ReportItemGift:
		return o.Gift
	case ReportItemSC:
		return o.SC
	case ReportItemGuard:
		return o.Guard
	case ReportItemDanmuRanking, ReportItemBoxRanking, ReportItemBoxProfitRanking,
		ReportItemGiftRanking, ReportItemSCRanking:
		return o.RankingSize(item) > 0
	case ReportItemGuardList:
		return o.GuardList
	case ReportItemBoxProfitDiagram:
		return o.BoxProfitDiagram
	case ReportItemDanmuDiagram:
		return o.DanmuDiagram
	case ReportItemBoxDiagram:
		return o.BoxDiagram
	case ReportItemGiftDiagram:
		return o.GiftDiagram
	case ReportItemSCDiagram:
		return o.SCDiagram
	case ReportItemGuardDiagram:
		return o.GuardDiagram
	case ReportItemDanmuCloud:
		return o.DanmuCloud
	default:
		return false
	}
}

// RankingSize returns the requested size for a ranking item, zero for anything else
func (o ReportOptions) RankingSize(item ReportItem) int {
	switch item {
	case ReportItemDanmuRanking:
		return o.DanmuRanking
	case ReportItemBoxRanking:
		return o.BoxRanking
	case ReportItemBoxProfitRanking:
		return o.BoxProfitRanking
	case ReportItemGiftRanking:
		return o.GiftRanking
	case ReportItemSCRanking:
		return o.SCRanking
	default:
		return 0
	}
}
