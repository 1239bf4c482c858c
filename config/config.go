package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LLMProvider    string  `envconfig:"LLM_PROVIDER" default:"groq"` // groq, openai, ollama, anthropic
	LLMAPIKey      string  `envconfig:"LLM_API_KEY"`
	GroqAPIKey     string  `envconfig:"GROQ_API_KEY"`
	LLMModel       string  `envconfig:"LLM_MODEL"`
	LLMBaseURL     string  `envconfig:"LLM_BASE_URL"`
	LLMTemperature float64 `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	LLMMaxTokens   int     `envconfig:"LLM_MAX_TOKENS" default:"500"`

	DiscordToken  string `envconfig:"DISCORD_BOT_TOKEN"`
	DiscordHandle string `envconfig:"DISCORD_HANDLE"` // overrides the connected username for @mentions

	MaxSteps    int `envconfig:"MAX_STEPS" default:"5"`
	MemoryTurns int `envconfig:"MEMORY_TURNS" default:"10"`

	SearchProvider string        `envconfig:"SEARCH_PROVIDER" default:"searxng"` // searxng, brave
	SearXNGURL     string        `envconfig:"SEARXNG_URL" default:"http://localhost:8888"`
	BraveAPIKey    string        `envconfig:"BRAVE_API_KEY"`
	SearchTimeout  time.Duration `envconfig:"SEARCH_TIMEOUT" default:"10s"`

	RosterFile  string            `envconfig:"ROSTER_FILE"`
	RosterNames map[string]string `envconfig:"ROSTER_NAMES" default:"member1:@member1,member2:@member2,member3:@member3,member4:@member4"`

	AnnounceCron string `envconfig:"ANNOUNCE_CRON" default:"0 10 * * 6"` // Saturday 10:00
	AnnounceTZ   string `envconfig:"ANNOUNCE_TZ" default:"Local"`

	DatabasePath string `envconfig:"DATABASE_PATH" default:"./botbro.db"`

	LogDebug  bool `envconfig:"LOG_DEBUG" default:"false"`
	LogPretty bool `envconfig:"LOG_PRETTY" default:"false"`
}

func Load() (*Config, error) {
	_ = godotenv.Load() // ignore error if no .env

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if cfg.LLMAPIKey == "" {
		cfg.LLMAPIKey = cfg.GroqAPIKey
	}
	return &cfg, nil
}

// Validate reports every missing secret at once. The transport token is
// only needed when the bot connects to Discord.
func (c *Config) Validate(requireTransport bool) error {
	var missing []string
	if c.LLMAPIKey == "" && c.LLMProvider != "ollama" {
		missing = append(missing, "LLM_API_KEY")
	}
	if requireTransport && c.DiscordToken == "" {
		missing = append(missing, "DISCORD_BOT_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("MAX_STEPS must be at least 1, got %d", c.MaxSteps)
	}
	if c.MemoryTurns < 1 {
		return fmt.Errorf("MEMORY_TURNS must be at least 1, got %d", c.MemoryTurns)
	}
	return nil
}

// Location resolves AnnounceTZ, falling back to the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.AnnounceTZ == "" || c.AnnounceTZ == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.AnnounceTZ)
	if err != nil {
		return nil, fmt.Errorf("loading ANNOUNCE_TZ %q: %w", c.AnnounceTZ, err)
	}
	return loc, nil
}
