package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const envPrefix = "STARWATCH"

// Config is the whole bot configuration
type Config struct {
	LogLevel string `mapstructure:"log_level"`

	Redis    RedisConfig    `mapstructure:"redis"`
	Discord  DiscordConfig  `mapstructure:"discord"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Platform PlatformConfig `mapstructure:"platform"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
	Posts    PostsConfig    `mapstructure:"posts"`

	StreamerList []StreamerConfig `mapstructure:"streamers"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	GuildID       string `mapstructure:"guild_id"`
}

// FeedConfig points at the relay that serves each room's danmaku commands as JSON
type FeedConfig struct {
	URL        string        `mapstructure:"url"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

type PlatformConfig struct {
	LiveBaseURL       string        `mapstructure:"live_base_url"`
	VCBaseURL         string        `mapstructure:"vc_base_url"`
	SESSDATA          string        `mapstructure:"sessdata"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

type MonitorConfig struct {
	OnlyConnectNecessaryRoom bool `mapstructure:"only_connect_necessary_room"`
	OnlyHandleNecessaryEvent bool `mapstructure:"only_handle_necessary_event"`

	// A live start this soon after a live end is treated as an encoder reconnect
	ReconnectInterval time.Duration `mapstructure:"up_disconnect_connect_interval"`
	ReconnectMessage  string        `mapstructure:"up_disconnect_connect_message"`

	// Rooms not linked this long after startup are logged, zero disables the check
	ConnectTimeout time.Duration `mapstructure:"wait_for_all_connection_timeout"`
}

type PostsConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`

	// Actions replaces the phrase for a post type, keyed by names such as "video"
	Actions map[string]string `mapstructure:"actions"`
}

// StreamerConfig is one broadcaster, uname and room_id are looked up when omitted
type StreamerConfig struct {
	UID     int64          `mapstructure:"uid"`
	UName   string         `mapstructure:"uname"`
	RoomID  int64          `mapstructure:"room_id"`
	Targets []TargetConfig `mapstructure:"targets"`
}

type TargetConfig struct {
	ID         string       `mapstructure:"id"`
	LiveOn     PushConfig   `mapstructure:"live_on"`
	LiveOff    PushConfig   `mapstructure:"live_off"`
	PostUpdate PushConfig   `mapstructure:"post_update"`
	LiveReport ReportConfig `mapstructure:"live_report"`
}

type PushConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Message string `mapstructure:"message"`
}

type ReportConfig struct {
	Enabled bool `mapstructure:"enabled"`

	FansChange      bool `mapstructure:"fans_change"`
	FansMedalChange bool `mapstructure:"fans_medal_change"`
	GuardChange     bool `mapstructure:"guard_change"`

	Danmu bool `mapstructure:"danmu"`
	Box   bool `mapstructure:"box"`
	Gift  bool `mapstructure:"gift"`
	SC    bool `mapstructure:"sc"`
	Guard bool `mapstructure:"guard"`

	DanmuRanking     int `mapstructure:"danmu_ranking"`
	BoxRanking       int `mapstructure:"box_ranking"`
	BoxProfitRanking int `mapstructure:"box_profit_ranking"`
	GiftRanking      int `mapstructure:"gift_ranking"`
	SCRanking        int `mapstructure:"sc_ranking"`

	GuardList bool `mapstructure:"guard_list"`

	BoxProfitDiagram bool `mapstructure:"box_profit_diagram"`
	DanmuDiagram     bool `mapstructure:"danmu_diagram"`
	BoxDiagram       bool `mapstructure:"box_diagram"`
	GiftDiagram      bool `mapstructure:"gift_diagram"`
	SCDiagram        bool `mapstructure:"sc_diagram"`
	GuardDiagram     bool `mapstructure:"guard_diagram"`

	DanmuCloud bool `mapstructure:"danmu_cloud"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")

	v.SetDefault("feed.url", "ws://localhost:8080/ws")
	v.SetDefault("feed.retry_delay", 5*time.Second)

	v.SetDefault("platform.live_base_url", "https://api.live.bilibili.com")
	v.SetDefault("platform.vc_base_url", "https://api.vc.bilibili.com")
	v.SetDefault("platform.sessdata", "")
	v.SetDefault("platform.requests_per_second", 5.0)
	v.SetDefault("platform.timeout", 10*time.Second)

	v.SetDefault("monitor.only_connect_necessary_room", false)
	v.SetDefault("monitor.only_handle_necessary_event", false)
	v.SetDefault("monitor.up_disconnect_connect_interval", 2*time.Minute)
	v.SetDefault("monitor.up_disconnect_connect_message", "The stream dropped for a moment and is back now.")
	v.SetDefault("monitor.wait_for_all_connection_timeout", 30*time.Second)

	v.SetDefault("posts.enabled", true)
	v.SetDefault("posts.interval", time.Minute)
}

// Load reads .env, then the optional config file at path, then STARWATCH_ environment variables
func Load(path string) (*Config, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

func newViper(path string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return v, nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			log.Warn().Str("path", path).Msg("Config file not found, using defaults and environment")
			return v, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return v, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the settings every command needs
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	if c.Redis.Addr == "" {
		return errors.New("redis.addr cannot be empty")
	}

	if c.Feed.URL == "" {
		return errors.New("feed.url cannot be empty")
	}

	if c.Monitor.ReconnectInterval < 0 {
		return errors.New("monitor.up_disconnect_connect_interval cannot be negative")
	}

	if c.Monitor.ConnectTimeout < 0 {
		return errors.New("monitor.wait_for_all_connection_timeout cannot be negative")
	}

	if c.Posts.Enabled && c.Posts.Interval <= 0 {
		return errors.New("posts.interval must be positive")
	}

	for name := range c.Posts.Actions {
		if _, ok := models.ParsePostType(name); !ok {
			return fmt.Errorf("posts.actions: unknown post type %q", name)
		}
	}

	seen := make(map[int64]bool, len(c.StreamerList))
	for i, s := range c.StreamerList {
		if s.UID <= 0 {
			return fmt.Errorf("streamers[%d]: uid must be positive", i)
		}
		if seen[s.UID] {
			return fmt.Errorf("streamers[%d]: duplicate uid %d", i, s.UID)
		}
		seen[s.UID] = true

		for j, t := range s.Targets {
			if t.ID == "" {
				return fmt.Errorf("streamers[%d].targets[%d]: id cannot be empty", i, j)
			}
		}
	}

	return nil
}

// Level returns the parsed log level, Validate has already checked it
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// TargetIDs lists every configured channel once
func (c *Config) TargetIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, s := range c.StreamerList {
		for _, t := range s.Targets {
			if !seen[t.ID] {
				seen[t.ID] = true
				ids = append(ids, t.ID)
			}
		}
	}
	return ids
}

// Streamers converts the configured broadcasters into models
func (c *Config) Streamers() []*models.Streamer {
	streamers := make([]*models.Streamer, 0, len(c.StreamerList))
	for _, s := range c.StreamerList {
		targets := make([]*models.Target, 0, len(s.Targets))
		for _, t := range s.Targets {
			targets = append(targets, &models.Target{
				ID:         t.ID,
				LiveOn:     models.PushConfig(t.LiveOn),
				LiveOff:    models.PushConfig(t.LiveOff),
				PostUpdate: models.PushConfig(t.PostUpdate),
				LiveReport: t.LiveReport.options(),
			})
		}

		streamers = append(streamers, &models.Streamer{
			UID:     s.UID,
			Name:    s.UName,
			RoomID:  s.RoomID,
			Targets: targets,
		})
	}
	return streamers
}

// PostActions returns the configured post phrases by post type
func (c *Config) PostActions() models.PostActions {
	if len(c.Posts.Actions) == 0 {
		return nil
	}

	actions := make(models.PostActions, len(c.Posts.Actions))
	for name, action := range c.Posts.Actions {
		if t, ok := models.ParsePostType(name); ok {
			actions[t] = action
		}
	}
	return actions
}

func (r ReportConfig) options() models.ReportOptions {
	return models.ReportOptions{
		Enabled:          r.Enabled,
		FansChange:       r.FansChange,
		FansMedalChange:  r.FansMedalChange,
		GuardChange:      r.GuardChange,
		Danmu:            r.Danmu,
		Box:              r.Box,
		Gift:             r.Gift,
		SC:               r.SC,
		Guard:            r.Guard,
		DanmuRanking:     r.DanmuRanking,
		BoxRanking:       r.BoxRanking,
		BoxProfitRanking: r.BoxProfitRanking,
		GiftRanking:      r.GiftRanking,
		SCRanking:        r.SCRanking,
		GuardList:        r.GuardList,
		BoxProfitDiagram: r.BoxProfitDiagram,
		DanmuDiagram:     r.DanmuDiagram,
		BoxDiagram:       r.BoxDiagram,
		GiftDiagram:      r.GiftDiagram,
		SCDiagram:        r.SCDiagram,
		GuardDiagram:     r.GuardDiagram,
		DanmuCloud:       r.DanmuCloud,
	}
}

// Watch calls onChange once the config file at path is written or replaced.
// It returns immediately when path is empty.
func Watch(path string, onChange func(fsnotify.Event)) error {
	if path == "" {
		return nil
	}

	v, err := newViper(path)
	if err != nil {
		return err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		log.Info().Str("path", e.Name).Str("op", e.Op.String()).Msg("Config file changed")
		onChange(e)
	})
	v.WatchConfig()

	return nil
}
