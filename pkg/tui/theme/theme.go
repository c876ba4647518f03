// Package theme centralizes Lip Gloss styles for the picker TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles the picker grid and footer render with.
type Theme struct {
	Title      lipgloss.Style
	Weekday    lipgloss.Style
	Cell       lipgloss.Style
	OtherMonth lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	RangeBound lipgloss.Style
	RangeInner lipgloss.Style
	Marked     lipgloss.Style
	Cursor     lipgloss.Style

	Help   lipgloss.Style
	Status lipgloss.Style
}

const accentHex = "#AF87FF"

// Default returns the built-in theme. The range interior is the accent
// blended most of the way toward the terminal background so the bounds stay
// visually distinct from the span between them.
func Default() Theme {
	accent := lipgloss.Color(accentHex)
	inner := lipgloss.Color(blend(accentHex, "#1A1A1A", 0.55))

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true),
		Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Cell:       lipgloss.NewStyle(),
		OtherMonth: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Today:      lipgloss.NewStyle().Bold(true).Underline(true),
		Selected:   lipgloss.NewStyle().Reverse(true),
		RangeBound: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("0")),
		RangeInner: lipgloss.NewStyle().Background(inner),
		Marked:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Cursor:     lipgloss.NewStyle().Reverse(true).Bold(true),

		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// blend mixes two hex colors in Lab space, which keeps the midpoints from
// going muddy the way plain RGB interpolation does.
func blend(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	return a.BlendLab(b, t).Clamped().Hex()
}
