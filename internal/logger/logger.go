// Package logger provides structured logging using zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Init initializes the global logger with proper configuration based on environment.
func Init() {
	zerolog.TimeFieldFormat = milliTimeFormat
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }

	const callerWidth = 30
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		path := fmt.Sprintf("%s:%d", filepath.Base(file), line)
		if len(path) >= callerWidth {
			return path[len(path)-callerWidth:]
		}
		return path + strings.Repeat(" ", callerWidth-len(path))
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Stdout carries the turn log, so operator logs go to stderr.
	var output io.Writer = os.Stderr
	if os.Getenv("LOG_FORMAT") != "json" {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: milliTimeFormat,
			NoColor:    !isDevelopmentMode(),
		}
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		f, ferr := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if ferr == nil {
			output = io.MultiWriter(output, f)
		}
	}

	log.Logger = log.Output(output).With().Caller().Logger()

	log.Info().
		Str("level", level.String()).
		Bool("dev", isDevelopmentMode()).
		Str("format", envOr("LOG_FORMAT", "console")).
		Msg("Logger initialized")
}

func isDevelopmentMode() bool {
	return os.Getenv("DEV") == "true" ||
		os.Getenv("DEV_MODE") == "true" ||
		os.Getenv("DEVELOPMENT") == "true"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Get returns the global logger instance.
func Get() zerolog.Logger {
	return log.Logger
}

// NewSessionID returns a fresh game session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// ForSession returns a logger enriched with the game session id.
func ForSession(id string) zerolog.Logger {
	if id == "" {
		return log.Logger
	}
	return log.Logger.With().Str("session", id).Logger()
}

// LogPayload logs a snapshot payload at debug level, truncating if too long.
func LogPayload(logger zerolog.Logger, label string, body []byte) {
	if len(body) == 0 {
		return
	}
	if len(body) > 1000 {
		logger.Debug().Str("payload", string(body[:1000])).Bool("truncated", true).Int("bytes", len(body)).Msg(label)
	} else {
		logger.Debug().Str("payload", string(body)).Msg(label)
	}
}
