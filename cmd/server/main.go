package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"rotaplan/config"
	"rotaplan/pkg/logging"
)

var (
	cfg    config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rotaplan",
	Short: "Crop-rotation planning service",
	Long: `rotaplan generates multi-year crop rotations for a field split into
divisions, honouring repeat intervals, pest and disease carry-over and the
nitrogen left by the previous crop.

Run without arguments to start the HTTP server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		var err error
		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
