package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/notifier"
	"github.com/KirkDiggler/starwatch/internal/repositories/mention"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const (
	defaultLiveOnMessage  = "{uname} is live: {title}\n{url}"
	defaultLiveOffMessage = "{uname} has gone offline"
	defaultPostMessage    = "{uname} {action}\n{url}"
)

// messageSender is the part of *discordgo.Session the notifier uses
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotifierConfig holds configuration for the Discord notifier
type NotifierConfig struct {
	// Sender is usually the bot's session
	Sender messageSender

	// MentionRepo holds the users pinged by the mention-only messages
	MentionRepo mention.Repository
}

// Notifier implements notifier.Notifier by posting to Discord channels
type Notifier struct {
	sender      messageSender
	mentionRepo mention.Repository
}

var _ notifier.Notifier = (*Notifier)(nil)

// NewNotifier creates a Discord notifier
func NewNotifier(cfg *NotifierConfig) (*Notifier, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}

	if cfg.MentionRepo == nil {
		return nil, errors.New("mention repository cannot be nil")
	}

	return &Notifier{
		sender:      cfg.Sender,
		mentionRepo: cfg.MentionRepo,
	}, nil
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// each sends to every target pick accepts, and keeps going past failures
func (n *Notifier) each(streamer *models.Streamer, kind string, pick func(*models.Target) bool, send func(*models.Target) error) error {
	if streamer == nil {
		return errors.New("streamer cannot be nil")
	}

	var errs []error
	for _, target := range streamer.Targets {
		if !pick(target) {
			continue
		}

		if err := send(target); err != nil {
			log.Error().
				Err(err).
				Int64("room_id", streamer.RoomID).
				Str("uname", streamer.Name).
				Str("target", target.ID).
				Str("kind", kind).
				Msg("Failed to send notification")
			errs = append(errs, fmt.Errorf("target %s: %w", target.ID, err))
		}
	}

	return errors.Join(errs...)
}

// SendLiveStarted posts the live-on message to targets that enabled it
func (n *Notifier) SendLiveStarted(ctx context.Context, input *notifier.LiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return n.each(input.Streamer, "live_on",
		func(t *models.Target) bool { return t.LiveOn.Enabled },
		func(t *models.Target) error {
			_, err := n.sender.ChannelMessageSend(t.ID, input.Render(orDefault(t.LiveOn.Message, defaultLiveOnMessage)))
			return err
		})
}

// SendLiveStartedMentions pings the live-on mention list of each live-on target
func (n *Notifier) SendLiveStartedMentions(ctx context.Context, input *notifier.LiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return n.each(input.Streamer, "live_on_mentions",
		func(t *models.Target) bool { return t.LiveOn.Enabled },
		func(t *models.Target) error {
			return n.sendMentions(ctx, t.ID, models.MentionLiveOn)
		})
}

// SendLiveEnded posts the live-off message to targets that enabled it
func (n *Notifier) SendLiveEnded(ctx context.Context, input *notifier.LiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return n.each(input.Streamer, "live_off",
		func(t *models.Target) bool { return t.LiveOff.Enabled },
		func(t *models.Target) error {
			_, err := n.sender.ChannelMessageSend(t.ID, input.Render(orDefault(t.LiveOff.Message, defaultLiveOffMessage)))
			return err
		})
}

// SendReport posts each report target the parts of the report it asked for
func (n *Notifier) SendReport(ctx context.Context, input *notifier.ReportInput) error {
	if input == nil || input.Report == nil {
		return errors.New("input cannot be nil")
	}

	log.Debug().
		Str("report_id", input.Report.ID).
		Fields(input.Report.Fields()).
		Msg("Sending report")

	return n.each(input.Streamer, "live_report",
		func(t *models.Target) bool { return t.LiveReport.Enabled },
		func(t *models.Target) error {
			_, err := n.sender.ChannelMessageSendEmbed(t.ID, renderReport(input.Report, t.LiveReport))
			return err
		})
}

// SendPostUpdate posts the new-post message to targets that enabled it
func (n *Notifier) SendPostUpdate(ctx context.Context, input *notifier.PostInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return n.each(input.Streamer, "post_update",
		func(t *models.Target) bool { return t.PostUpdate.Enabled },
		func(t *models.Target) error {
			_, err := n.sender.ChannelMessageSend(t.ID, input.Render(orDefault(t.PostUpdate.Message, defaultPostMessage)))
			return err
		})
}

// SendPostUpdateMentions pings the post mention list of each post target
func (n *Notifier) SendPostUpdateMentions(ctx context.Context, input *notifier.PostInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return n.each(input.Streamer, "post_mentions",
		func(t *models.Target) bool { return t.PostUpdate.Enabled },
		func(t *models.Target) error {
			return n.sendMentions(ctx, t.ID, models.MentionPost)
		})
}

// SendToAll posts a fixed message to every target the filter accepts
func (n *Notifier) SendToAll(ctx context.Context, input *notifier.SendToAllInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	pick := input.Filter
	if pick == nil {
		pick = func(*models.Target) bool { return true }
	}

	return n.each(input.Streamer, "broadcast", pick, func(t *models.Target) error {
		_, err := n.sender.ChannelMessageSend(t.ID, input.Message)
		return err
	})
}

// sendMentions pings a channel's mention list, nothing is sent when it is empty
func (n *Notifier) sendMentions(ctx context.Context, channelID string, kind models.MentionKind) error {
	userIDs, err := n.mentionRepo.List(ctx, &mention.ListInput{Kind: kind, TargetID: channelID})
	if err != nil {
		return fmt.Errorf("failed to list mentions: %w", err)
	}

	if len(userIDs) == 0 {
		return nil
	}

	_, err = n.sender.ChannelMessageSend(channelID, renderMentions(userIDs, " "))
	return err
}
