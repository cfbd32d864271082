// redcarpet mines an awards-show tweet corpus for the night's story: who
// hosted, which awards were handed out, who won, who was nominated, who
// presented, and what the crowd thought of the red carpet.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"redcarpet/internal/config"
	"redcarpet/internal/logging"
)

var (
	cfgPath string
	verbose bool
	year    string

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "redcarpet",
		Short: "Mine awards-show results from a tweet corpus",
		Long: `redcarpet ingests a night's worth of tweets about an awards ceremony
and extracts the hosts, the award categories, and each award's winner,
nominees and presenters, plus the crowd's red-carpet verdicts.

The corpus is expected at <data_dir>/gg<year>.json (or .json.zip).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			teardown()
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", ".redcarpet/config.yaml", "path to config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&year, "year", "", "ceremony year (overrides config)")

	root.AddCommand(newPreprocessCmd())
	root.AddCommand(newExtractCmd())
	root.AddCommand(newResultsCmd())
	root.AddCommand(newScoreCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newRunsCmd())
	return root
}

func setup() error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if year != "" {
		cfg.Ceremony.Year = year
	}
	if verbose {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}

	if err := logging.Initialize(".", logging.Options{
		DebugMode:  cfg.Logging.DebugMode,
		Level:      cfg.Logging.Level,
		Categories: cfg.Logging.Categories,
	}); err != nil {
		return err
	}

	logger, err = newConsoleLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	return nil
}

func teardown() {
	if logger != nil {
		_ = logger.Sync()
	}
	logging.Close()
}

func newConsoleLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = true
	zcfg.DisableCaller = true
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
