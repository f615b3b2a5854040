package logger

import (
	"os"

	"github.com/KitchAIv1/statjam-sub000/internal/config"
	"github.com/rs/zerolog"
)

// New returns the bootstrap logger used while configuration loads
func New() zerolog.Logger {
	return SetLevel(zerolog.DebugLevel)
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)
}

// FromConfig returns the application logger at the configured level
func FromConfig(cfg *config.Config) zerolog.Logger {
	return SetLevel(cfg.Level())
}
