package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordahead/internal/tui/banner"
	"github.com/f3rmion/wordahead/internal/wordahead"
)

const bannerRows = 3

// sentenceState tracks the translation of the sentence around the selection.
type sentenceState struct {
	text    string
	loading bool
	result  *wordahead.SentenceTranslation
	err     error
}

// renderPanel draws the detail panel for the selection. width is the outer
// width of the panel including its border.
func renderPanel(sel *wordahead.WordAnnotation, sentence sentenceState, width int, spin string) string {
	if sel == nil {
		return ""
	}
	inner := width - PanelStyle.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder

	if cols := min(inner, len([]rune(sel.Word))*6); banner.Fits(sel.Word, cols) {
		if art := banner.Cached(sel.Word, cols, bannerRows); art != "" {
			b.WriteString(BannerStyle.Render(art))
			b.WriteString("\n")
		}
	}

	b.WriteString(PanelWordStyle.Render(sel.Word))
	b.WriteString(" ")
	b.WriteString(BadgeStyle.Render(sel.DisplayCEFR()))
	b.WriteString("\n\n")

	b.WriteString(TranslationStyle.Render(sel.DisplayTranslation()))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(LabelStyle.Render(label))
		b.WriteString(ValueStyle.Render(value))
		b.WriteString("\n")
	}
	if sel.Transliteration != "" {
		row("Transliteration", sel.Transliteration)
	}
	row("Root", sel.DisplayRoot())
	row("Importance", fmt.Sprintf("%d (%s)", sel.Importance, sel.Importance.Class()))
	row("Opacity", fmt.Sprintf("%.2f", sel.Opacity))

	if len(sel.ExampleSentences) > 0 {
		b.WriteString("\n")
		b.WriteString(LabelStyle.Render("Examples"))
		b.WriteString("\n")
		wrap := lipgloss.NewStyle().Width(inner - 2)
		for _, ex := range sel.ExampleSentences {
			b.WriteString(wrap.Render("• " + ExampleStyle.Render(ex.English)))
			b.WriteString("\n")
			if ex.Hebrew != "" {
				b.WriteString(wrap.Render("  " + ValueStyle.Render(ex.Hebrew)))
				b.WriteString("\n")
			}
		}
	}

	if sel.Note != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(NoteStyle.Render(sel.Note)))
		b.WriteString("\n")
	}

	if s := renderSentence(sentence, inner, spin); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}

	return PanelStyle.Width(width - PanelStyle.GetHorizontalBorderSize()).
		Render(strings.TrimRight(b.String(), "\n"))
}

func renderSentence(s sentenceState, width int, spin string) string {
	switch {
	case s.loading:
		return LoadingStyle.Render(spin + " Translating sentence...")
	case s.err != nil:
		return ErrorStyle.Render("Sentence translation failed")
	case s.result == nil:
		return ""
	}

	wrap := lipgloss.NewStyle().Width(width)
	var b strings.Builder
	b.WriteString(LabelStyle.Render("Sentence"))
	b.WriteString("\n")
	b.WriteString(wrap.Render(ExampleStyle.Render(s.text)))
	b.WriteString("\n")
	b.WriteString(wrap.Render(TranslationStyle.Render(s.result.Hebrew)))
	if s.result.Transliteration != "" {
		b.WriteString("\n")
		b.WriteString(wrap.Render(ValueStyle.Render(s.result.Transliteration)))
	}
	if s.result.Note != "" {
		b.WriteString("\n")
		b.WriteString(wrap.Render(NoteStyle.Render(s.result.Note)))
	}
	return b.String()
}
