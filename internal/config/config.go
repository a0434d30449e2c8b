package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	Token             string `env:"TOKEN"`
	GuildID           string `env:"GUILD_ID"`
	AnnounceChannelID string `env:"ANNOUNCE_CHANNEL_ID"`

	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	// EventStore selects where event documents live. Users and snapshots are
	// always read from PostgreSQL.
	EventStore    string `env:"EVENT_STORE" envDefault:"postgres"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	BaseURL  string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	DefaultLocale     string        `env:"DEFAULT_LOCALE" envDefault:"en"`
	DisplayTimezone   string        `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`
	SchedulerInterval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"10m"`

	Calendars Calendars `envPrefix:"CALENDAR_"`
}

// Calendars holds the external calendar id of each event kind.
type Calendars struct {
	Missions         string `env:"MISSIONS"`
	ElectiveMissions string `env:"ELECTIVE_MISSIONS"`
	Training         string `env:"TRAINING"`
	ElectiveTraining string `env:"ELECTIVE_TRAINING"`
	Selection        string `env:"SELECTION"`
	Misc             string `env:"MISC"`
}

// ByKey indexes the calendars by entities.CalendarKey.
func (c Calendars) ByKey() map[string]string {
	return map[string]string{
		"missions":          c.Missions,
		"elective_missions": c.ElectiveMissions,
		"training":          c.Training,
		"elective_training": c.ElectiveTraining,
		"selection":         c.Selection,
		"misc":              c.Misc,
	}
}

// Load reads the configuration from the environment, and from .env when
// present, then validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DiscordEnabled reports whether the Discord adapter should start.
func (c *Config) DiscordEnabled() bool {
	return strings.TrimSpace(c.Token) != ""
}

func (c *Config) validate() error {
	if c.DiscordEnabled() {
		if strings.TrimSpace(c.GuildID) == "" {
			return fmt.Errorf("config: GUILD_ID is required when TOKEN is set")
		}
		if !isSnowflake(c.GuildID) {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
		if c.AnnounceChannelID != "" && !isSnowflake(c.AnnounceChannelID) {
			return fmt.Errorf("config: ANNOUNCE_CHANNEL_ID must be a Discord channel ID (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/clanops?sslmode=disable"
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	switch c.EventStore {
	case StorePostgres:
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("config: REDIS_ADDR is required when EVENT_STORE=redis")
		}
	default:
		return fmt.Errorf("config: EVENT_STORE must be %q or %q, got %q", StorePostgres, StoreRedis, c.EventStore)
	}

	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("config: invalid BASE_URL (%q): %w", c.BaseURL, err)
	}
	if c.SchedulerInterval <= 0 {
		return fmt.Errorf("config: SCHEDULER_INTERVAL must be positive")
	}
	return nil
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
