package main

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupEnvironment loads .env if present and configures zerolog output
// and level. flagLevel, when non-empty, wins over the LOGLEVEL variable.
func setupEnvironment(flagLevel string) {
	envErr := godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	levelStr := flagLevel
	if levelStr == "" {
		levelStr = os.Getenv("LOGLEVEL")
	}
	switch strings.ToLower(levelStr) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info", "":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown log level '%s', defaulting to info.", levelStr)
	}

	if envErr == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	}
}
