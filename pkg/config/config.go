package config

import "github.com/arthur-debert/rename-files/pkg/errors"

// Color modes accepted by output.color
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the resolved settings for one run
type Config struct {
	Logging Logging `koanf:"logging"`
	Output  Output  `koanf:"output"`
}

// Logging controls the zerolog console logger
type Logging struct {
	Verbosity  int    `koanf:"verbosity"`
	TimeFormat string `koanf:"time_format"`
}

// Output controls how diagnostics are rendered
type Output struct {
	Color string `koanf:"color"`
}

// Validate checks that every setting has an accepted value
func (c *Config) Validate() error {
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfigValid, "verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "unknown color mode %q (want auto, always or never)", c.Output.Color).
			WithDetail("color", c.Output.Color)
	}
	return nil
}
