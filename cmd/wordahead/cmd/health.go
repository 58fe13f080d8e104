package cmd

import (
	"fmt"

	"github.com/f3rmion/wordahead/internal/tui"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the analysis service",
	RunE:  runHealth,
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	defer log.Sync()

	client := newClient(cfg, log)
	h, err := client.Health(cmd.Context())
	if err != nil {
		fmt.Println(tui.ErrorStyle.Render(fmt.Sprintf("%s is unreachable", client.BaseURL())))
		return err
	}

	yesNo := func(b bool) string {
		if b {
			return tui.CopiedStyle.Render("yes")
		}
		return tui.ErrorStyle.Render("no")
	}

	fmt.Println(tui.LabelStyle.Render("Service") + tui.ValueStyle.Render(client.BaseURL()))
	fmt.Println(tui.LabelStyle.Render("Status") + tui.ValueStyle.Render(h.Status))
	fmt.Println(tui.LabelStyle.Render("Scoring model") + yesNo(h.GPTSMAvailable))
	fmt.Println(tui.LabelStyle.Render("OpenAI") + yesNo(h.OpenAIConfigured))
	return nil
}
