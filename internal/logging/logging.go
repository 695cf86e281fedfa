package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger. Output is JSON unless LOG_FORMAT=console.
func New(service, level string) zerolog.Logger {
	var output io.Writer = os.Stdout
	if os.Getenv("LOG_FORMAT") == "console" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: "15:04:05"}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	return zerolog.New(output).
		With().
		Timestamp().
		Str("service", service).
		Logger().
		Level(ParseLevel(level))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return zerolog.InfoLevel
	}
	if lvl, err := zerolog.ParseLevel(v); err == nil {
		return lvl
	}
	return zerolog.InfoLevel
}
