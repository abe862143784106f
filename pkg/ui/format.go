package ui

import (
	"os"

	"github.com/arthur-debert/rename-files/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatText renders plain text output without any styling
	FormatText Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatTerminal:
		return "term"
	default:
		return "unknown"
	}
}

// DetectFormat determines the output format for a stream based on its
// terminal capabilities
func DetectFormat(output *os.File) Format {
	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Check terminal color support
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// ResolveFormat applies a color mode from the configuration. Auto defers
// to DetectFormat; output may be nil for always and never.
func ResolveFormat(colorMode string, output *os.File) Format {
	switch colorMode {
	case config.ColorAlways:
		return FormatTerminal
	case config.ColorNever:
		return FormatText
	default:
		if output == nil {
			return FormatText
		}
		return DetectFormat(output)
	}
}
