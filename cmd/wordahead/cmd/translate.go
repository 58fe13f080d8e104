package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/wordahead/internal/tui"
	"github.com/f3rmion/wordahead/internal/wordahead"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate <word>",
	Short: "Translate a word or a sentence",
	Long: `Fetch the translation details of a single word and print them the way the
TUI detail panel shows them. With --sentence, all arguments are joined and
translated as one sentence.

Example:
  wordahead translate deforestation
  wordahead translate --sentence "The forest is quiet."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
	translateCmd.Flags().Bool("sentence", false, "translate the arguments as one sentence")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	sentence, _ := cmd.Flags().GetBool("sentence")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Sync()

	client := newClient(cfg, log)

	if sentence {
		text := strings.Join(args, " ")
		res, err := client.TranslateSentence(cmd.Context(), text)
		if err != nil {
			return fmt.Errorf("translating sentence: %w", err)
		}

		fmt.Println(tui.ExampleStyle.Render(text))
		fmt.Println(tui.TranslationStyle.Render(res.Hebrew))
		if res.Transliteration != "" {
			fmt.Println(tui.ValueStyle.Render(res.Transliteration))
		}
		if res.Note != "" {
			fmt.Println(tui.NoteStyle.Render(res.Note))
		}
		return nil
	}

	if len(args) > 1 {
		return fmt.Errorf("expected one word, got %d (use --sentence for text)", len(args))
	}

	word := args[0]
	patch, err := client.TranslateWord(cmd.Context(), word)
	if err != nil {
		return fmt.Errorf("translating %q: %w", word, err)
	}

	w, err := wordahead.Merge(wordahead.WordAnnotation{Word: word}, patch)
	if err != nil {
		return err
	}
	fmt.Println(tui.RenderDetails(w, 60))
	return nil
}
