package cmd

import (
	"fmt"

	"github.com/rustyeddy/besttrade/market"
	"github.com/rustyeddy/besttrade/market/graph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataPath   string
	dataFormat string
	dataHours  int
)

func addDataFlags(c *cobra.Command) {
	c.Flags().StringVarP(&dataPath, "data", "d", "", "price file (default from config)")
	c.Flags().StringVar(&dataFormat, "format", "", "price file format: auto, graph or csv")
	c.Flags().IntVar(&dataHours, "hours", 0, "samples per symbol in graph files")
}

// loadUniverse reads the price file named by the config, with any data flags
// set on cmd taking precedence.
func loadUniverse(cmd *cobra.Command) (market.Universe, string, error) {
	path, format, hours := cfg.Data.Path, cfg.Data.Format, cfg.Data.Hours
	if cmd.Flags().Changed("data") {
		path = dataPath
	}
	if cmd.Flags().Changed("format") {
		format = dataFormat
	}
	if cmd.Flags().Changed("hours") {
		hours = dataHours
	}

	u, err := graph.Load(path, format, hours)
	if err != nil {
		return nil, path, fmt.Errorf("load prices: %w", err)
	}
	logger.Info("prices loaded",
		zap.String("path", path),
		zap.String("format", format),
		zap.Int("symbols", len(u)))
	return u, path, nil
}
