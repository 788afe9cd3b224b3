package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/starwatch/internal/repositories/mention"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// MentionRepo backs the /mentions command
	MentionRepo mention.Repository

	// TargetIDs are the channels that receive notifications, commands only work there
	TargetIDs []string
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.MentionRepo == nil {
		return nil, errors.New("mention repository cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Session returns the underlying Discord session, shared with the notifier
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	mentionsCmd := NewMentionsCommand(b.config.MentionRepo, b.config.TargetIDs)
	if err := b.RegisterCommand(mentionsCmd); err != nil {
		return fmt.Errorf("failed to register mentions command: %w", err)
	}

	log.Info().Msg("Bot is now running")
	return nil
}

// Stop removes the registered commands and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Warn().Err(err).Str("command", cmdName).Str("command_id", cmdID).Msg("Failed to delete command")
		} else {
			log.Debug().Str("command", cmdName).Str("command_id", cmdID).Msg("Deleted command")
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord, for the configured guild or globally
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	guildID := b.config.GuildID

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Info().
		Str("command", cmd.GetName()).
		Str("command_id", createdCmd.ID).
		Str("guild_id", guildID).
		Msg("Registered command")

	return nil
}

// handleInteraction routes slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	if err := h.Handle(context.Background(), s, i); err != nil {
		log.Error().Err(err).Str("command", name).Str("channel_id", i.ChannelID).Msg("Error handling command")
	}
}
