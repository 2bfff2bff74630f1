package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
)

// New builds the process logger: human readable output in development,
// JSON lines everywhere else.
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if cfg.IsDevelopment() {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.IsDevelopment() && level > zerolog.DebugLevel {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", cfg.AppName).
		Str("env", cfg.Env).
		Logger()
}
