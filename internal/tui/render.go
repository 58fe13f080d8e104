package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordahead/internal/reader"
	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/lucasb-eyer/go-colorful"
)

// blend mixes the text color into the background by opacity, which is how a
// terminal approximates a translucent word.
func blend(opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return ColorText
	case opacity <= 0:
		return ColorBg
	}

	fg, err := colorful.Hex(string(ColorText))
	if err != nil {
		return ColorText
	}
	bg, err := colorful.Hex(string(ColorBg))
	if err != nil {
		return ColorText
	}
	return lipgloss.Color(bg.BlendRgb(fg, opacity).Hex())
}

// wordStyle returns the style of a unit: its importance class with the
// foreground taken from the unit's own opacity.
func wordStyle(u reader.Unit) lipgloss.Style {
	style, ok := importanceStyles[u.Class]
	if !ok {
		style = lipgloss.NewStyle()
	}
	return style.Foreground(blend(u.Opacity))
}

// renderWords draws the laid out units. cursor is highlighted when the grid
// has focus; selected is the word shown in the panel, or -1.
func renderWords(units []reader.Unit, cursor, selected int, focused bool) string {
	if len(units) == 0 {
		return ""
	}

	lines := make([]string, reader.Rows(units))
	cols := make([]int, len(lines))
	for _, u := range units {
		var b strings.Builder
		b.WriteString(lines[u.Row])
		if gap := u.Col - cols[u.Row]; gap > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}

		style := wordStyle(u)
		switch {
		case u.Index == selected:
			style = SelectedWordStyle
		case focused && u.Index == cursor:
			style = style.Background(ColorBgAlt)
		}
		b.WriteString(style.Render(u.Label))

		lines[u.Row] = b.String()
		cols[u.Row] = u.Col + u.Width
	}
	return strings.Join(lines, "\n")
}

// renderLegend lists the canonical opacity of each importance level.
func renderLegend() string {
	var b strings.Builder
	b.WriteString("Importance: ")
	for i, e := range wordahead.Legend {
		if i > 0 {
			b.WriteString("  ")
		}
		swatch := lipgloss.NewStyle().Foreground(blend(e.Opacity)).Render("■")
		fmt.Fprintf(&b, "%s %d %s (%.2f)", swatch, e.Importance, e.Label, e.Opacity)
	}
	return LegendStyle.Render(b.String())
}

// RenderAnalysis draws words as the TUI word grid followed by the legend,
// for non-interactive output.
func RenderAnalysis(words []wordahead.WordAnnotation, width int) string {
	grid := renderWords(reader.Layout(words, width), -1, -1, false)
	return lipgloss.JoinVertical(lipgloss.Left, grid, renderLegend())
}

// RenderDetails draws the detail panel for w, for non-interactive output.
func RenderDetails(w wordahead.WordAnnotation, width int) string {
	return renderPanel(&w, sentenceState{}, width, "")
}
