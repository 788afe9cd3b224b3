package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	colorReport = 0xfb7299

	// Discord rejects embed field values longer than this
	maxFieldLength = 1024
)

var rankingTitles = []struct {
	kind  models.RankingKind
	item  models.ReportItem
	title string
}{
	{models.RankingDanmu, models.ReportItemDanmuRanking, "Top chatters"},
	{models.RankingBox, models.ReportItemBoxRanking, "Most boxes opened"},
	{models.RankingBoxProfit, models.ReportItemBoxProfitRanking, "Luckiest box openers"},
	{models.RankingGift, models.ReportItemGiftRanking, "Top gifters"},
	{models.RankingSC, models.ReportItemSCRanking, "Top super chats"},
}

var guardTitles = map[models.GuardTier]string{
	models.GuardCaptain:   "New captains",
	models.GuardCommander: "New commanders",
	models.GuardGovernor:  "New governors",
}

// renderReport renders the parts of a report a target asked for
func renderReport(report *models.Report, opts models.ReportOptions) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s live report", report.UName),
		URL:   fmt.Sprintf("https://live.bilibili.com/%d", report.RoomID),
		Color: colorReport,
		Description: fmt.Sprintf("Started %s\nEnded %s\nLive for %dh %dm %ds",
			time.Unix(report.StartTime, 0).Format(models.ReportTimeLayout),
			time.Unix(report.EndTime, 0).Format(models.ReportTimeLayout),
			report.Duration.Hours, report.Duration.Minutes, report.Duration.Seconds,
		),
		Timestamp: time.Unix(report.EndTime, 0).Format(time.RFC3339),
		Footer:    &discordgo.MessageEmbedFooter{Text: report.ID},
	}

	add := func(name, value string) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  name,
			Value: truncate(value, maxFieldLength),
		})
	}

	if d := report.Deltas; d != nil {
		if opts.FansChange {
			add("Followers", renderDelta(d.Followers))
		}
		if opts.FansMedalChange {
			add("Fan club", renderDelta(d.FanMedals))
		}
		if opts.GuardChange {
			add("Guards", renderDelta(d.Guards))
		}
	}

	if opts.Danmu {
		add("Chat", fmt.Sprintf("%d messages from %d viewers", report.DanmuCount, report.DanmuPersonCount))
	}
	if opts.Box {
		add("Mystery boxes", fmt.Sprintf("%d boxes from %d viewers, profit %.1f, luckier than %.2f%% of sessions",
			report.BoxCount, report.BoxPersonCount, report.BoxProfit, report.BoxBeatPercent))
	}
	if opts.Gift {
		add("Gifts", fmt.Sprintf("%.1f from %d viewers", report.GiftProfit, report.GiftPersonCount))
	}
	if opts.SC {
		add("Super chats", fmt.Sprintf("%.1f from %d viewers", report.SCProfit, report.SCPersonCount))
	}
	if opts.Guard {
		add("Memberships", fmt.Sprintf("Captain %d, Commander %d, Governor %d",
			report.CaptainCount, report.CommanderCount, report.GovernorCount))
	}

	for _, r := range rankingTitles {
		size := opts.RankingSize(r.item)
		ranking := report.Rankings[r.kind]
		if size <= 0 || ranking == nil {
			continue
		}
		add(r.title, renderRanking(ranking, size))
	}

	if opts.GuardList {
		for _, tier := range models.GuardTiers {
			infos := report.Guards[tier]
			if len(infos) == 0 {
				continue
			}
			lines := make([]string, len(infos))
			for i, info := range infos {
				lines[i] = fmt.Sprintf("%s × %d", info.Name, info.Months)
			}
			add(guardTitles[tier], strings.Join(lines, "\n"))
		}
	}

	return embed
}

func renderDelta(d models.CountDelta) string {
	if d.Before < 0 {
		return fmt.Sprintf("%d", d.After)
	}
	return fmt.Sprintf("%d → %d (%+d)", d.Before, d.After, d.After-d.Before)
}

// renderRanking lists up to size entries, the ranking may hold more for other targets
func renderRanking(ranking *models.Ranking, size int) string {
	n := min(size, len(ranking.Values))
	lines := make([]string, n)
	for i := 0; i < n; i++ {
		lines[i] = fmt.Sprintf("%d. %s: %s", i+1, ranking.Names[i], formatValue(ranking.Values[i]))
	}
	return strings.Join(lines, "\n")
}

func formatValue(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// renderMentions turns user IDs into Discord mentions
func renderMentions(userIDs []string, sep string) string {
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = "<@" + id + ">"
	}
	return strings.Join(mentions, sep)
}

func renderMentionList(userIDs []string) string {
	if len(userIDs) == 0 {
		return "Nobody yet."
	}
	return truncate(renderMentions(userIDs, "\n"), 4096)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
