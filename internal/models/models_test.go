package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ModelsTestSuite struct {
	suite.Suite
}

func TestModelsTestSuite(t *testing.T) {
	suite.Run(t, new(ModelsTestSuite))
}

func (s *ModelsTestSuite) TestWantsRequiresEnabledReport() {
	streamer := &Streamer{
		Targets: []*Target{
			{ID: "a", LiveReport: ReportOptions{Enabled: false, Danmu: true}},
			{ID: "b", LiveReport: ReportOptions{Enabled: true, Gift: true}},
		},
	}

	s.False(streamer.Wants(DanmuItems...))
	s.True(streamer.Wants(GiftItems...))
	s.False(streamer.Wants(SCItems...))
}

func (s *ModelsTestSuite) TestRankingHasAndMax() {
	streamer := &Streamer{
		Targets: []*Target{
			{ID: "a", LiveReport: ReportOptions{Enabled: true, DanmuRanking: 3}},
			{ID: "b", LiveReport: ReportOptions{Enabled: true, DanmuRanking: 10}},
			{ID: "c", LiveReport: ReportOptions{Enabled: false, DanmuRanking: 50}},
		},
	}

	s.True(streamer.Wants(ReportItemDanmuRanking))
	s.False(streamer.Wants(ReportItemGiftRanking))
	s.Equal(10, streamer.MaxRanking(ReportItemDanmuRanking))
	s.Equal(0, streamer.MaxRanking(ReportItemSCRanking))
	s.Equal(0, ReportOptions{DanmuRanking: 4}.RankingSize(ReportItemDanmu))
}

func (s *ModelsTestSuite) TestNewDuration() {
	s.Equal(Duration{Hours: 2, Minutes: 3, Seconds: 4}, NewDuration(2*3600+3*60+4))
	s.Equal(Duration{}, NewDuration(0))
}

func (s *ModelsTestSuite) TestGuardTierFromLabel() {
	tier, ok := GuardTierFromLabel("提督")
	s.True(ok)
	s.Equal(GuardCommander, tier)
	s.Equal(MetricCommander, tier.Metric())

	_, ok = GuardTierFromLabel("unknown")
	s.False(ok)
}

func (s *ModelsTestSuite) TestPostActionAndURL() {
	tests := []struct {
		name   string
		post   *Post
		action string
		url    string
	}{
		{"repost", &Post{ID: 11, Type: PostTypeRepost}, "reposted a post", "https://t.bilibili.com/11"},
		{"video", &Post{ID: 12, Type: PostTypeVideo, BVID: "BV1xx"}, "uploaded a new video", "https://www.bilibili.com/video/BV1xx"},
		{"article", &Post{ID: 13, Type: PostTypeArticle, RID: 99}, "published a new article", "https://www.bilibili.com/read/cv99"},
		{"audio", &Post{ID: 14, Type: PostTypeAudio, RID: 7}, "uploaded a new track", "https://www.bilibili.com/audio/au7"},
		{"unknown", &Post{ID: 15, Type: 4200}, DefaultPostAction, "https://t.bilibili.com/15"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.Equal(tt.action, tt.post.Action())
			s.Equal(tt.url, tt.post.URL())
		})
	}
}

func (s *ModelsTestSuite) TestFieldsOmitsAbsentParts() {
	report := &Report{
		UName:      "streamer",
		RoomID:     42,
		DanmuCount: 10,
		Rankings: map[RankingKind]*Ranking{
			RankingDanmu: {Faces: []string{"f"}, Names: []string{"n"}, Values: []float64{10}},
			RankingGift:  {},
		},
	}

	fields := report.Fields()

	s.Equal(int64(10), fields["danmu_count"])
	s.Contains(fields, "danmu_ranking_unames")
	s.NotContains(fields, "gift_ranking_unames")
	s.NotContains(fields, "fans_before")
	s.NotContains(fields, "captain_infos")
	s.NotContains(fields, "all_danmu")
}

func (s *ModelsTestSuite) TestFieldsIncludesRequestedParts() {
	report := &Report{
		Deltas: &Deltas{Followers: CountDelta{Before: -1, After: 100}},
		Guards: map[GuardTier][]*GuardInfo{
			GuardCaptain: {{Face: "face", Name: "name", Months: 3}},
		},
		Danmu: []string{},
	}

	fields := report.Fields()

	s.Equal(int64(-1), fields["fans_before"])
	s.Equal(int64(100), fields["fans_after"])
	s.Equal([][]any{{"face", "name", int64(3)}}, fields["captain_infos"])
	s.NotContains(fields, "governor_infos")
	s.Contains(fields, "all_danmu")
}

func (s *ModelsTestSuite) TestRoundFixed() {
	s.Equal(0.1, RoundFixed(0.05, 1))
	s.Equal(0.3, RoundFixed(0.35, 1))
	s.Equal(2.67, RoundFixed(2.675, 2))
	s.Equal(0.12, RoundFixed(0.125, 2))
	s.Equal(-1.0, RoundFixed(-1, 1))
	s.Equal(0.0063, RoundFixed(1.0/160, 4))
}

func (s *ModelsTestSuite) TestPostActionsOverride() {
	video := &Post{Type: PostTypeVideo}
	repost := &Post{Type: PostTypeRepost}

	actions := PostActions{PostTypeVideo: "投稿了新视频"}
	s.Equal("投稿了新视频", actions.Action(video))
	s.Equal("reposted a post", actions.Action(repost))

	var none PostActions
	s.Equal("uploaded a new video", none.Action(video))

	t, ok := ParsePostType("article")
	s.True(ok)
	s.Equal(PostTypeArticle, t)
	_, ok = ParsePostType("podcast")
	s.False(ok)
}
