// Package config loads process settings from the environment, with an
// optional .env file filling in anything the environment leaves unset.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Store selects the match store
type Store string

const (
	StoreMemory Store = "memory"
	StoreRedis  Store = "redis"
)

// Config holds every setting of the bot process
type Config struct {
	// Discord
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// Storage
	Store         Store
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MatchTTL      time.Duration

	// HTTPEnabled serves the web API on HTTPAddr
	HTTPEnabled bool
	HTTPAddr    string

	// Card database
	CardAPIBaseURL string
	SearchDebounce time.Duration

	// Life buttons and spotlight
	HoldThreshold     time.Duration
	HoldInterval      time.Duration
	SpotlightTick     time.Duration
	SpotlightDuration time.Duration
	AutoSpotlight     bool

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads envFile, if it exists, then the environment. Variables
// already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	p := &parser{}
	cfg := &Config{
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),

		Store:         Store(strings.ToLower(getEnv("STORE", string(StoreMemory)))),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       p.int("REDIS_DB", 0),
		MatchTTL:      p.duration("MATCH_TTL", 12*time.Hour),

		HTTPEnabled: p.bool("HTTP_ENABLED", true),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),

		CardAPIBaseURL: getEnv("CARD_API_BASE_URL", "https://api.magicthegathering.io/v1"),
		SearchDebounce: p.duration("SEARCH_DEBOUNCE", 400*time.Millisecond),

		HoldThreshold:     p.duration("HOLD_THRESHOLD", 2*time.Second),
		HoldInterval:      p.duration("HOLD_INTERVAL", 500*time.Millisecond),
		SpotlightTick:     p.duration("SPOTLIGHT_TICK", 120*time.Millisecond),
		SpotlightDuration: p.duration("SPOTLIGHT_DURATION", 2400*time.Millisecond),
		AutoSpotlight:     p.bool("AUTO_SPOTLIGHT", false),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}
	if p.err != nil {
		return nil, p.err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable together
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
	default:
		return fmt.Errorf("STORE must be memory or redis, got %q", c.Store)
	}

	if c.DiscordToken == "" && !c.HTTPEnabled {
		return errors.New("nothing to run: set DISCORD_TOKEN or enable HTTP")
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.LogFormat)
	}
	return nil
}

// NewLogger builds the process logger from the log settings
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.LogFormat == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parser keeps the first parse error so Load can read every field first
type parser struct {
	err error
}

func (p *parser) fail(key, value string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
}

func (p *parser) int(key string, defaultValue int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return defaultValue
	}
	return v
}

func (p *parser) bool(key string, defaultValue bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return defaultValue
	}
	return v
}

func (p *parser) duration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return defaultValue
	}
	if v <= 0 {
		p.fail(key, raw, errors.New("must be positive"))
		return defaultValue
	}
	return v
}
