package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/wordahead/internal/reader"
	"github.com/f3rmion/wordahead/internal/tui"
	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const detailsConcurrency = 4

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text>",
	Short: "Analyze text and print the weighted words",
	Long: `Send text to the analysis service and print every word weighted by its
importance, followed by the importance legend.

With --details, translations are fetched for every word at or above
--min-importance and printed as a table.

Example:
  wordahead analyze "Deforestation threatens the forest"
  wordahead analyze --details --min-importance 3 "Deforestation threatens the forest"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Bool("details", false, "fetch translations for important words")
	analyzeCmd.Flags().Int("min-importance", 3, "lowest importance fetched with --details")
	analyzeCmd.Flags().Int("width", 80, "output width")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	details, _ := cmd.Flags().GetBool("details")
	minImportance, _ := cmd.Flags().GetInt("min-importance")
	width, _ := cmd.Flags().GetInt("width")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Sync()

	client := newClient(cfg, log)

	in := &reader.Input{}
	in.SetText(strings.Join(args, " "))
	if err := in.Submit(cmd.Context(), client); err != nil {
		return errors.New(in.ErrorMessage())
	}

	words := in.Words()
	fmt.Println(tui.RenderAnalysis(words, width))

	if !details {
		return nil
	}

	rows, err := fetchDetails(cmd.Context(), client, words, wordahead.Importance(minImportance), log)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(renderDetailsTable(rows))
	return nil
}

// fetchDetails translates each distinct word at or above min importance,
// at most detailsConcurrency at a time. Failed lookups keep the analysis
// fields only.
func fetchDetails(ctx context.Context, tr reader.Translator, words []wordahead.WordAnnotation, minImportance wordahead.Importance, log *zap.Logger) ([]wordahead.WordAnnotation, error) {
	var picked []wordahead.WordAnnotation
	seen := make(map[string]bool)
	for _, w := range words {
		if w.Importance < minImportance || seen[w.Word] {
			continue
		}
		seen[w.Word] = true
		picked = append(picked, w)
	}

	rows := make([]wordahead.WordAnnotation, len(picked))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailsConcurrency)

	for i, w := range picked {
		i, w := i, w
		g.Go(func() error {
			rows[i] = w
			patch, err := tr.TranslateWord(ctx, w.Word)
			if err != nil {
				log.Error("translation fetch failed", zap.String("word", w.Word), zap.Error(err))
				fmt.Fprintf(os.Stderr, "Warning: no translation for %q: %v\n", w.Word, err)
				return nil
			}
			merged, err := wordahead.Merge(w, patch)
			if err != nil {
				return fmt.Errorf("merging translation for %q: %w", w.Word, err)
			}
			rows[i] = merged
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

func renderDetailsTable(rows []wordahead.WordAnnotation) string {
	if len(rows) == 0 {
		return tui.HelpStyle.Render("No words at the requested importance.")
	}

	wordCol := lipgloss.NewStyle().Width(18).Bold(true).Foreground(tui.ColorAccent)
	cefrCol := lipgloss.NewStyle().Width(5).Foreground(tui.ColorSecondary)
	trCol := lipgloss.NewStyle().Width(22).Foreground(tui.ColorSuccess)
	translitCol := lipgloss.NewStyle().Foreground(tui.ColorText)

	lines := []string{
		tui.LabelStyle.Render("Word") + "  " + tui.HelpStyle.Render("CEFR  Translation            Transliteration"),
	}
	for _, w := range rows {
		translation := w.Translation
		if translation == "" {
			translation = "-"
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			wordCol.Render(w.Word),
			cefrCol.Render(w.DisplayCEFR()),
			trCol.Render(translation),
			translitCol.Render(w.Transliteration),
		))
	}
	return strings.Join(lines, "\n")
}
