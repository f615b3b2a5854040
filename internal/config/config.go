package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// StreamMaxLen caps each game's live event stream, 0 keeps every entry
	StreamMaxLen int64 `env:"STREAM_MAX_LEN" envDefault:"1000"`

	// Game rules
	QuarterSeconds  int           `env:"QUARTER_SECONDS" envDefault:"600"`
	OvertimeSeconds int           `env:"OVERTIME_SECONDS" envDefault:"300"`
	TimeoutsPerTeam int           `env:"TIMEOUTS_PER_TEAM" envDefault:"5"`
	DebounceWindow  time.Duration `env:"DEBOUNCE_WINDOW" envDefault:"500ms"`

	// Persistence dispatcher
	QueueSize      int           `env:"QUEUE_SIZE" envDefault:"256"`
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT" envDefault:"5s"`

	// TickInterval drives running clocks from the server, 0 leaves ticking to clients
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`

	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	PingInterval   time.Duration `env:"SSE_PING_INTERVAL" envDefault:"30s"`
}

// Load reads a .env file when one exists, then parses the environment
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("http_addr", cfg.HTTPAddr).
		Str("redis_addr", cfg.RedisAddr).
		Str("log_level", cfg.LogLevel).
		Int("quarter_seconds", cfg.QuarterSeconds).
		Int("overtime_seconds", cfg.OvertimeSeconds).
		Dur("debounce_window", cfg.DebounceWindow).
		Dur("tick_interval", cfg.TickInterval).
		Msg("configuration loaded")

	return &cfg, nil
}

// Level returns the configured zerolog level, info when unset
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func (c *Config) validate() error {
	if c.QuarterSeconds <= 0 {
		return errors.New("QUARTER_SECONDS must be positive")
	}
	if c.OvertimeSeconds <= 0 {
		return errors.New("OVERTIME_SECONDS must be positive")
	}
	if c.TimeoutsPerTeam < 0 {
		return errors.New("TIMEOUTS_PER_TEAM cannot be negative")
	}
	if c.QueueSize <= 0 {
		return errors.New("QUEUE_SIZE must be positive")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return nil
}
