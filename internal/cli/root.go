// Package cli wires the toolkit's cobra commands: extract, build, stats and
// version.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grcjp/testbank/internal/config"
	"github.com/grcjp/testbank/internal/storage"
	"github.com/grcjp/testbank/pkg/types"
)

var rootCmd = &cobra.Command{
	Use:   "testbank",
	Short: "CMMC CCP test-bank toolkit",
	Long: "Testbank converts the raw CMMC CCP practice-exam text dump into a structured\n" +
		"JSON question bank and renders banks into Rapid Memory EPUB books.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the shared dependencies. The returned
// cleanup flushes the logger and closes the storage adapter.
func setup(cmd *cobra.Command) (*types.Config, *zap.Logger, storage.Adapter, func(), error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	adapter, err := storage.NewAdapter(cfg.Storage)
	if err != nil {
		logger.Sync()
		return nil, nil, nil, nil, fmt.Errorf("failed to create storage adapter: %w", err)
	}

	cleanup := func() {
		adapter.Close()
		logger.Sync()
	}
	return cfg, logger, adapter, cleanup, nil
}
