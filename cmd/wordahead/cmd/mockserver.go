package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/f3rmion/wordahead/internal/logger"
	"github.com/f3rmion/wordahead/internal/mockapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Run a local stand-in for the analysis service",
	Long: `Run a local HTTP service that implements the analysis API with canned
translations and a word-length importance heuristic. Useful for trying the
TUI without the real service.

Example:
  wordahead mock-server --port 5000
  wordahead --api-url http://localhost:5000`,
	RunE: runMockServer,
}

func init() {
	rootCmd.AddCommand(mockServerCmd)
	mockServerCmd.Flags().Int("port", 0, "listen port (default from config, 5000)")
	mockServerCmd.Flags().String("allowed-origins", "", "CORS allowed origins (default from config)")
}

func runMockServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	port := cfg.Mock.Port
	if p, _ := cmd.Flags().GetInt("port"); p != 0 {
		port = p
	}
	origins := cfg.Mock.AllowedOrigins
	if o, _ := cmd.Flags().GetString("allowed-origins"); o != "" {
		origins = o
	}

	// The server owns no terminal UI, so it logs to stderr.
	log, err := logger.NewWithWriter(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	srv := mockapi.New(mockapi.Options{AllowedOrigins: origins, Logger: log})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(fmt.Sprintf(":%d", port))
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return fmt.Errorf("mock server: %w", err)
	case s := <-sig:
		log.Info("shutting down", zap.String("signal", s.String()))
	}

	return srv.Shutdown()
}
