// Package tui provides the interactive terminal UI for WordAhead.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#ff6b6b") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles, focus
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - cursor, selection
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - translations
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Editor styles
var (
	EditorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	EditorFocusedStyle = EditorStyle.
				BorderForeground(ColorSecondary)
)

// Importance styles, keyed by class. They must not add padding or margins:
// the word grid relies on a label occupying exactly its display width.
var importanceStyles = map[string]lipgloss.Style{
	"importance-0": lipgloss.NewStyle(),
	"importance-1": lipgloss.NewStyle(),
	"importance-2": lipgloss.NewStyle(),
	"importance-3": lipgloss.NewStyle().Bold(true),
	"importance-4": lipgloss.NewStyle().Bold(true).Underline(true),
}

// Word grid styles
var (
	CursorStyle = lipgloss.NewStyle().
			Background(ColorBgAlt)

	SelectedWordStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Bold(true)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(1, 2)

	PanelWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BannerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	BadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBg).
			Background(ColorSecondary).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TranslationStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	ExampleStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	NoteStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)
)

// Legend styles
var (
	LegendStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)
