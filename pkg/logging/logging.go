package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultTimeFormat is used when SetupLogger is given an empty time format
const DefaultTimeFormat = time.Kitchen

// Options configures the global logger
type Options struct {
	Verbosity  int
	Out        io.Writer
	TimeFormat string
	NoColor    bool
}

// SetupLogger configures the global logger based on verbosity level.
// Logs go to a console writer only; nothing is written to disk.
func SetupLogger(opts Options) {
	zerolog.SetGlobalLevel(LevelFor(opts.Verbosity))

	timeFormat := opts.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        opts.Out,
		TimeFormat: timeFormat,
		NoColor:    opts.NoColor,
	}
	log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()

	// Add caller information for debug and trace levels
	if opts.Verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", opts.Verbosity).Msg("Logger initialized")
}

// LevelFor maps a -v count to a log level
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
