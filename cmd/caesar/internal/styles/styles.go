package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/germanamz/caesar/pkg/config"
)

// GitHub terminal light theme palette, with dark-background fallbacks.
var (
	ColorFg      = lipgloss.AdaptiveColor{Light: "#24292f", Dark: "#e6edf3"} // primary foreground
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#656d76", Dark: "#8d96a0"} // muted/dim text
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#4493f8"} // accent blue
	ColorError   = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"} // error red
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"} // success green
	ColorMagenta = lipgloss.AdaptiveColor{Light: "#8250df", Dark: "#ab7df8"} // purple/magenta
)

// Tree-drawing characters for the brute-force listing.
const (
	TreeCorner = "└ "
	TreeTee    = "├ "
)

// Theme holds every style used by the terminal display. Styles are created
// from one renderer so that color detection follows the actual output.
type Theme struct {
	Renderer *lipgloss.Renderer

	Intro   lipgloss.Style
	Prompt  lipgloss.Style
	Error   lipgloss.Style
	Working lipgloss.Style
	Label   lipgloss.Style
	Result  lipgloss.Style
	Shift   lipgloss.Style
	Dim     lipgloss.Style
	Goodbye lipgloss.Style
}

// New builds a Theme for w. color is one of the config color settings:
// "never" renders plain text, "always" forces 256 colors even when w is not a
// terminal, and anything else detects the profile from w.
func New(w io.Writer, color string) Theme {
	r := lipgloss.NewRenderer(w)
	switch color {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	}
	return NewWithRenderer(r)
}

// NewWithRenderer builds a Theme on an existing renderer.
func NewWithRenderer(r *lipgloss.Renderer) Theme {
	return Theme{
		Renderer: r,
		Intro:    r.NewStyle().Foreground(ColorMuted),
		Prompt:   r.NewStyle().Bold(true).Foreground(ColorAccent),
		Error:    r.NewStyle().Foreground(ColorError),
		Working:  r.NewStyle().Italic(true).Foreground(ColorMagenta),
		Label:    r.NewStyle().Bold(true).Foreground(ColorFg),
		Result:   r.NewStyle().Foreground(ColorSuccess),
		Shift:    r.NewStyle().Foreground(ColorAccent),
		Dim:      r.NewStyle().Foreground(ColorMuted),
		Goodbye:  r.NewStyle().Foreground(ColorMuted),
	}
}

// Plain reports whether the theme renders without escape sequences.
func (t Theme) Plain() bool {
	return t.Renderer.ColorProfile() == termenv.Ascii
}
