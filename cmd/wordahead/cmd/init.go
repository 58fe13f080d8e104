package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/wordahead/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize WordAhead configuration",
	Long: `Initialize WordAhead configuration in your config directory.

This writes config.yaml with the default settings:
  - api_url          analysis service base URL
  - close_delay      how long the detail panel keeps its content while closing
  - request_timeout  per-request timeout (0 = none)
  - log              log file and level
  - mock             settings for 'wordahead mock-server'`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	if u := getAPIURLOverride(); u != "" {
		cfg.APIURL = u
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Initialized WordAhead configuration in %s\n\n", configDir)
	fmt.Printf("  Created %s\n", config.FileName)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  1. Point api_url at your analysis service (currently %s)\n", cfg.APIURL)
	fmt.Println("  2. Run 'wordahead health' to check the service")
	fmt.Println("  3. Run 'wordahead' to start reading")

	return nil
}
