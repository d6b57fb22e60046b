package cmd

import (
	"fmt"
	"os"

	"github.com/rustyeddy/besttrade/market/graph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a price file to CSV",
	Long: `Read a price file in any supported format and write it as
symbol,label,price CSV.

Example:
  besttrade convert -d graph.txt -o prices.csv`,
	Args: cobra.NoArgs,
	RunE: runConvert,
}

var convertOut string

func init() {
	rootCmd.AddCommand(convertCmd)
	addDataFlags(convertCmd)

	convertCmd.Flags().StringVarP(&convertOut, "output", "o", "", "output CSV path (required)")
	convertCmd.MarkFlagRequired("output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	u, path, err := loadUniverse(cmd)
	if err != nil {
		return err
	}

	f, err := os.Create(convertOut)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := graph.WriteCSV(f, u); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("converted", zap.String("from", path), zap.String("to", convertOut))
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d symbols to %s\n", len(u), convertOut)
	return nil
}
