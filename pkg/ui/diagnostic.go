package ui

import (
	"io"

	"github.com/arthur-debert/rename-files/pkg/engine"
	"github.com/arthur-debert/rename-files/pkg/pathbytes"
	"github.com/arthur-debert/rename-files/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DiagnosticRenderer formats rename failures for the user
type DiagnosticRenderer struct {
	format   Format
	registry *styles.Registry
	renderer *lipgloss.Renderer
}

// NewDiagnosticRenderer creates a renderer for the given format. Styled
// output always uses true color escapes, independent of the environment.
func NewDiagnosticRenderer(format Format, registry *styles.Registry) *DiagnosticRenderer {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.TrueColor)
	renderer.SetHasDarkBackground(true)

	return &DiagnosticRenderer{
		format:   format,
		registry: registry,
		renderer: renderer,
	}
}

// Render returns the one-line diagnostic for f, without a trailing newline.
// The text format is exactly f.Error().
func (d *DiagnosticRenderer) Render(f *engine.Failure) string {
	if d.format != FormatTerminal {
		return f.Error()
	}

	return d.style("SourcePath", pathbytes.Display(f.Source)) +
		" (" + d.style("Pattern", pathbytes.Display(f.MatchPattern)) +
		" " + d.style("Arrow", "→") +
		" " + d.style("Replacement", pathbytes.Display(f.Replacement)) +
		"): " + d.style("ErrorDetail", f.Detail())
}

func (d *DiagnosticRenderer) style(name, text string) string {
	return d.registry.Get(name).Renderer(d.renderer).Render(text)
}
