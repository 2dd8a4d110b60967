package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/nibzard/todo-go/internal/config"
)

// Palette
var (
	ColorFgMuted = lipgloss.AdaptiveColor{Light: "#8A8F98", Dark: "#636B78"}
	ColorRed     = lipgloss.Color("#E06C75")
	ColorGreen   = lipgloss.Color("#98C379")
	ColorYellow  = lipgloss.Color("#E5C07B")
	ColorBlue    = lipgloss.Color("#61AFEF")
	ColorMagenta = lipgloss.Color("#C678DD")
	ColorCyan    = lipgloss.Color("#56B6C2")
)

// Styles groups the styles used for command output and the browser. Styles
// are bound to a renderer so the color profile follows the output writer.
type Styles struct {
	Index    lipgloss.Style
	Pending  lipgloss.Style
	Done     lipgloss.Style
	DoneText lipgloss.Style
	Tag      lipgloss.Style
	Verb     lipgloss.Style
	Muted    lipgloss.Style
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the style set for r.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Styles{
		Index:    base.Foreground(ColorFgMuted),
		Pending:  base.Foreground(ColorYellow),
		Done:     base.Foreground(ColorGreen),
		DoneText: base.Foreground(ColorFgMuted).Strikethrough(true),
		Tag:      base.Foreground(ColorCyan),
		Verb:     base.Foreground(ColorBlue).Bold(true),
		Muted:    base.Foreground(ColorFgMuted),
		Title:    base.Foreground(ColorMagenta).Bold(true),
		Cursor:   base.Foreground(ColorMagenta).Bold(true),
		Error:    base.Foreground(ColorRed),
	}
}

// NewLipglossRenderer returns a renderer for w honoring the color mode
// (auto, always or never). In auto mode the profile is detected from w, so
// pipes and files get plain text.
func NewLipglossRenderer(w io.Writer, color string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}
