package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/repositories/mention"
	"github.com/bwmarrin/discordgo"
)

const optionKind = "kind"

var kindChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "live", Value: string(models.MentionLiveOn)},
	{Name: "post", Value: string(models.MentionPost)},
}

var kindLabels = map[models.MentionKind]string{
	models.MentionLiveOn: "live",
	models.MentionPost:   "post",
}

// MentionsCommand handles the /mentions command
type MentionsCommand struct {
	BaseCommand
	mentionRepo mention.Repository
	targets     map[string]bool
}

// NewMentionsCommand creates a new mentions command handler
func NewMentionsCommand(mentionRepo mention.Repository, targetIDs []string) *MentionsCommand {
	kindOption := func() []*discordgo.ApplicationCommandOption {
		return []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optionKind,
			Description: "Which announcement",
			Required:    true,
			Choices:     kindChoices,
		}}
	}

	targets := make(map[string]bool, len(targetIDs))
	for _, id := range targetIDs {
		targets[id] = true
	}

	return &MentionsCommand{
		BaseCommand: BaseCommand{
			Name:        "mentions",
			Description: "Get pinged when a broadcast starts or a post is published",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Get pinged in this channel",
					Options:     kindOption(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Stop getting pinged in this channel",
					Options:     kindOption(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "Show who gets pinged in this channel",
					Options:     kindOption(),
				},
			},
		},
		mentionRepo: mentionRepo,
		targets:     targets,
	}
}

// Handle processes a Discord interaction for the mentions command
func (c *MentionsCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	if !c.targets[i.ChannelID] {
		return RespondWithError(s, i, "This channel does not receive any notifications.")
	}

	sub := data.Options[0]
	kind := mentionKind(sub.Options)
	if kind == "" {
		return RespondWithError(s, i, "Pick live or post.")
	}

	user := interactionUser(i)
	if user == nil {
		return errors.New("interaction has no user")
	}

	input := &mention.ChangeInput{Kind: kind, TargetID: i.ChannelID, UserID: user.ID}

	switch sub.Name {
	case "join":
		added, err := c.mentionRepo.Add(ctx, input)
		if err != nil {
			return c.fail(s, i, err)
		}
		if !added {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You are already on the %s list.", kindLabels[kind]))
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You will be pinged here for every %s.", kindLabels[kind]))

	case "leave":
		removed, err := c.mentionRepo.Remove(ctx, input)
		if err != nil {
			return c.fail(s, i, err)
		}
		if !removed {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You were not on the %s list.", kindLabels[kind]))
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You left the %s list.", kindLabels[kind]))

	case "list":
		userIDs, err := c.mentionRepo.List(ctx, &mention.ListInput{Kind: kind, TargetID: i.ChannelID})
		if err != nil {
			return c.fail(s, i, err)
		}
		return RespondWithEmbed(s, i, fmt.Sprintf("%s mentions", kindLabels[kind]), renderMentionList(userIDs))

	default:
		return errors.New("unknown subcommand")
	}
}

func (c *MentionsCommand) fail(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	if respondErr := RespondWithError(s, i, "Something went wrong, try again later."); respondErr != nil {
		return errors.Join(err, respondErr)
	}
	return err
}

// mentionKind reads the kind option of a subcommand
func mentionKind(options []*discordgo.ApplicationCommandInteractionDataOption) models.MentionKind {
	for _, opt := range options {
		if opt.Name != optionKind {
			continue
		}
		kind := models.MentionKind(opt.StringValue())
		if _, ok := kindLabels[kind]; ok {
			return kind
		}
	}
	return ""
}
