// Package logger builds the zerolog loggers used across the application.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level and encoding of log output.
type Config struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level"`
	// Format is "console" for human-readable lines or "json".
	Format string `json:"format"`
}

// SetDefaults applies info/console.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}

// Validate checks the level and format names.
func (c Config) Validate() error {
	if _, err := parseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q", c.Format)
	}
}

// New returns a logger writing to w.
func New(w io.Writer, cfg Config) (zerolog.Logger, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return zerolog.Nop(), err
	}
	level, _ := parseLevel(cfg.Level)

	out := w
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// Component tags l with a component field.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func parseLevel(s string) (zerolog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
