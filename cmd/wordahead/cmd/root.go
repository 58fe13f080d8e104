// Package cmd contains all CLI commands for the WordAhead tool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/wordahead/internal/api"
	"github.com/f3rmion/wordahead/internal/config"
	"github.com/f3rmion/wordahead/internal/logger"
	"github.com/f3rmion/wordahead/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wordahead [text]",
	Short: "WordAhead - read English text with importance weighting and translations",
	Long: `WordAhead sends English text to an analysis service and shows every word
weighted by how important it is for understanding the text. Selecting a word
opens a detail panel with its translation, transliteration, root, CEFR level
and example sentences.

Running 'wordahead' without a subcommand launches the interactive TUI. Any
arguments are placed in the editor as the initial text.`,
	Args: cobra.ArbitraryArgs,
	RunE: runTUI,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/wordahead)")
	rootCmd.PersistentFlags().String("api-url", "", "analysis service base URL (default http://localhost:5000)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("WORDAHEAD")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// getAPIURLOverride returns the base URL given by flag or environment.
func getAPIURLOverride() string {
	return viper.GetString("api_url")
}

// loadConfig loads the config file and applies flag and environment
// overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadDir(getConfigDir())
	if err != nil {
		return nil, err
	}

	if u := getAPIURLOverride(); u != "" {
		cfg.APIURL = u
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newLogger opens the log file. Failing to log is not fatal.
func newLogger(cfg *config.Config) *zap.Logger {
	file := cfg.Log.File
	if file == "" {
		dir := getConfigDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return zap.NewNop()
		}
		file = config.DefaultLogFile(dir)
	}

	log, err := logger.New(logger.Options{File: file, Level: cfg.Log.Level})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return log
}

func newClient(cfg *config.Config, log *zap.Logger) *api.Client {
	return api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithLogger(log),
	)
}

// runTUI launches the interactive reader.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	defer log.Sync()

	log.Info("starting tui", zap.String("api_url", cfg.APIURL))

	model := tui.New(newClient(cfg, log), tui.Options{
		CloseDelay: cfg.CloseDelay,
		Logger:     log,
	})
	if len(args) > 0 {
		model.SetText(strings.Join(args, " "))
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
