package cmd

import (
	"fmt"

	"github.com/rustyeddy/besttrade/config"
	"github.com/rustyeddy/besttrade/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "besttrade",
	Short: "Find the best hourly buy and sell points for a stock",
	Long: `besttrade loads hourly price series for a list of stocks and reports the
single buy/sell pair that would have made the most money.

It provides tools for:
  - Listing the symbols in a price file
  - Printing a series with its hour-over-hour change
  - Finding the best buy and sell hour for one or all symbols
  - Journaling results to CSV or SQLite and querying them later
  - Converting graph price files to CSV`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfgFile  string
	logLevel string
)

// cfg and logger are set by setup before any subcommand runs.
var cfg *config.Config

var logger = zap.NewNop()

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}

	l, err := logging.New(c.Log.Level, c.Log.Development)
	if err != nil {
		return err
	}

	cfg = c
	logger = l
	logger.Debug("config loaded", zap.String("file", cfgFile), zap.String("data", cfg.Data.Path))
	return nil
}
