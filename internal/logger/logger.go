package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the process logger. Commands print their results on stdout,
// so the default level stays at warn; DUNSPARS_LOG_LEVEL overrides it.
func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(levelFromEnv())

	return logger
}

func SetLevel(level zerolog.Level) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Caller().
		Logger()

	logger = logger.Level(level)

	return logger
}

func levelFromEnv() zerolog.Level {
	raw := os.Getenv("DUNSPARS_LOG_LEVEL")
	if raw == "" {
		return zerolog.WarnLevel
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}
