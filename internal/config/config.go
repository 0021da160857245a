// Package config loads the settings of the parcopy command from the
// environment and builds the logger they describe.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig indicates a setting that parsed but is out of range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Log formats accepted by PARCOPY_LOG_FORMAT.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the environment settings. Command-line flags override them.
type Config struct {
	LogLevel       slog.Level `env:"PARCOPY_LOG_LEVEL"         envDefault:"info"`
	LogFormat      string     `env:"PARCOPY_LOG_FORMAT"        envDefault:"text"`
	Workers        int        `env:"PARCOPY_WORKERS"           envDefault:"0"`
	DropSelfCopies bool       `env:"PARCOPY_DROP_SELF_COPIES"  envDefault:"false"`
}

// ParseEnv fills target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load reads Config from the environment and validates it. A zero Workers
// means one worker per CPU.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.LogFormat != FormatText && c.LogFormat != FormatJSON {
		return fmt.Errorf("%w: log format %q, want %q or %q", ErrInvalidConfig, c.LogFormat, FormatText, FormatJSON)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// NewLogger returns a logger writing to w in the configured format and
// level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
