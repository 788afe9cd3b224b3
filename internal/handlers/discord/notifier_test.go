package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/notifier"
	"github.com/KirkDiggler/starwatch/internal/repositories/mention"
	mentionMocks "github.com/KirkDiggler/starwatch/internal/repositories/mention/mocks"
	"github.com/alicebob/miniredis/v2"
	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type sentMessage struct {
	channelID string
	content   string
	embed     *discordgo.MessageEmbed
}

type fakeSender struct {
	sent    []sentMessage
	failFor map[string]bool
}

func (f *fakeSender) ChannelMessageSend(channelID string, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.failFor[channelID] {
		return nil, errors.New("missing access")
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.failFor[channelID] {
		return nil, errors.New("missing access")
	}
	f.sent = append(f.sent, sentMessage{channelID: channelID, embed: embed})
	return &discordgo.Message{ChannelID: channelID}, nil
}

type NotifierTestSuite struct {
	suite.Suite
	mr          *miniredis.Miniredis
	client      *redis.Client
	mentionRepo mention.Repository
	sender      *fakeSender
	notifier    *Notifier
	streamer    *models.Streamer
	ctx         context.Context
}

func (s *NotifierTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.ctx = context.Background()

	repo, err := mention.NewRedis(&mention.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.mentionRepo = repo

	s.sender = &fakeSender{failFor: map[string]bool{}}
	s.notifier, err = NewNotifier(&NotifierConfig{Sender: s.sender, MentionRepo: s.mentionRepo})
	s.Require().NoError(err)

	s.streamer = &models.Streamer{
		UID:    7,
		Name:   "alice",
		RoomID: 1234,
		Targets: []*models.Target{
			{
				ID:         "100",
				LiveOn:     models.PushConfig{Enabled: true, Message: "{uname} started {title} at {url}"},
				LiveOff:    models.PushConfig{Enabled: true},
				PostUpdate: models.PushConfig{Enabled: true},
				LiveReport: models.ReportOptions{Enabled: true, Danmu: true},
			},
			{
				ID:     "200",
				LiveOn: models.PushConfig{Enabled: true},
			},
			{
				ID: "300",
			},
		},
	}
}

func (s *NotifierTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func (s *NotifierTestSuite) liveInput() *notifier.LiveInput {
	return &notifier.LiveInput{
		Streamer: s.streamer,
		UName:    "alice",
		Title:    "speedruns",
		URL:      "https://live.bilibili.com/1234",
	}
}

func (s *NotifierTestSuite) TestNewNotifierValidatesConfig() {
	_, err := NewNotifier(nil)
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{MentionRepo: s.mentionRepo})
	s.Error(err)

	_, err = NewNotifier(&NotifierConfig{Sender: s.sender})
	s.Error(err)
}

func (s *NotifierTestSuite) TestSendLiveStartedUsesTemplates() {
	err := s.notifier.SendLiveStarted(s.ctx, s.liveInput())
	s.Require().NoError(err)

	s.Require().Len(s.sender.sent, 2)
	s.Equal("100", s.sender.sent[0].channelID)
	s.Equal("alice started speedruns at https://live.bilibili.com/1234", s.sender.sent[0].content)
	s.Equal("200", s.sender.sent[1].channelID)
	s.Equal("alice is live: speedruns\nhttps://live.bilibili.com/1234", s.sender.sent[1].content)
}

func (s *NotifierTestSuite) TestSendLiveEndedOnlyEnabledTargets() {
	err := s.notifier.SendLiveEnded(s.ctx, s.liveInput())
	s.Require().NoError(err)

	s.Require().Len(s.sender.sent, 1)
	s.Equal("100", s.sender.sent[0].channelID)
	s.Equal("alice has gone offline", s.sender.sent[0].content)
}

func (s *NotifierTestSuite) TestSendLiveStartedMentions() {
	for _, user := range []string{"u2", "u1"} {
		_, err := s.mentionRepo.Add(s.ctx, &mention.ChangeInput{Kind: models.MentionLiveOn, TargetID: "100", UserID: user})
		s.Require().NoError(err)
	}
	_, err := s.mentionRepo.Add(s.ctx, &mention.ChangeInput{Kind: models.MentionPost, TargetID: "200", UserID: "u3"})
	s.Require().NoError(err)

	err = s.notifier.SendLiveStartedMentions(s.ctx, s.liveInput())
	s.Require().NoError(err)

	// channel 200 has no live-on list, so only 100 is pinged
	s.Require().Len(s.sender.sent, 1)
	s.Equal("100", s.sender.sent[0].channelID)
	s.Equal("<@u1> <@u2>", s.sender.sent[0].content)
}

func (s *NotifierTestSuite) TestSendPostUpdateAndMentions() {
	_, err := s.mentionRepo.Add(s.ctx, &mention.ChangeInput{Kind: models.MentionPost, TargetID: "100", UserID: "u9"})
	s.Require().NoError(err)

	input := &notifier.PostInput{
		Streamer: s.streamer,
		UName:    "alice",
		Action:   "posted a video",
		URL:      "https://www.bilibili.com/video/BV1xx",
	}

	s.Require().NoError(s.notifier.SendPostUpdateMentions(s.ctx, input))
	s.Require().NoError(s.notifier.SendPostUpdate(s.ctx, input))

	s.Require().Len(s.sender.sent, 2)
	s.Equal("<@u9>", s.sender.sent[0].content)
	s.Equal("alice posted a video\nhttps://www.bilibili.com/video/BV1xx", s.sender.sent[1].content)
}

func (s *NotifierTestSuite) TestSendReportEmbedsPerTarget() {
	report := &models.Report{
		ID:               "r-1",
		UName:            "alice",
		RoomID:           1234,
		StartTime:        1700000000,
		EndTime:          1700003600,
		Duration:         models.NewDuration(3600),
		DanmuCount:       10,
		DanmuPersonCount: 3,
	}

	err := s.notifier.SendReport(s.ctx, &notifier.ReportInput{Streamer: s.streamer, Report: report})
	s.Require().NoError(err)

	s.Require().Len(s.sender.sent, 1)
	s.Equal("100", s.sender.sent[0].channelID)
	s.Require().NotNil(s.sender.sent[0].embed)
	s.Equal("alice live report", s.sender.sent[0].embed.Title)
	s.Require().Len(s.sender.sent[0].embed.Fields, 1)
	s.Equal("10 messages from 3 viewers", s.sender.sent[0].embed.Fields[0].Value)
}

func (s *NotifierTestSuite) TestSendToAllFilterAndFailures() {
	s.sender.failFor["100"] = true

	err := s.notifier.SendToAll(s.ctx, &notifier.SendToAllInput{
		Streamer: s.streamer,
		Message:  "back online",
		Filter:   notifier.LiveOnEnabled,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "target 100")

	// a failing channel does not stop the rest
	s.Require().Len(s.sender.sent, 1)
	s.Equal("200", s.sender.sent[0].channelID)
	s.Equal("back online", s.sender.sent[0].content)
}

func (s *NotifierTestSuite) TestSendToAllWithoutFilter() {
	err := s.notifier.SendToAll(s.ctx, &notifier.SendToAllInput{Streamer: s.streamer, Message: "hi"})
	s.Require().NoError(err)
	s.Len(s.sender.sent, 3)
}

func (s *NotifierTestSuite) TestNilInputs() {
	s.Error(s.notifier.SendLiveStarted(s.ctx, nil))
	s.Error(s.notifier.SendReport(s.ctx, &notifier.ReportInput{Streamer: s.streamer}))
	s.Error(s.notifier.SendPostUpdate(s.ctx, &notifier.PostInput{}))
}

func (s *NotifierTestSuite) TestMentionListFailure() {
	ctrl := gomock.NewController(s.T())
	mockRepo := mentionMocks.NewMockRepository(ctrl)

	n, err := NewNotifier(&NotifierConfig{Sender: s.sender, MentionRepo: mockRepo})
	s.Require().NoError(err)

	mockRepo.EXPECT().List(gomock.Any(), &mention.ListInput{Kind: models.MentionLiveOn, TargetID: "100"}).
		Return(nil, errors.New("connection refused"))
	mockRepo.EXPECT().List(gomock.Any(), &mention.ListInput{Kind: models.MentionLiveOn, TargetID: "200"}).
		Return([]string{"u5"}, nil)

	err = n.SendLiveStartedMentions(s.ctx, s.liveInput())
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to list mentions")

	s.Require().Len(s.sender.sent, 1)
	s.Equal("200", s.sender.sent[0].channelID)
	s.Equal("<@u5>", s.sender.sent[0].content)
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}
