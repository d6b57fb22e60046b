package cmd

import (
	"fmt"

	"github.com/rustyeddy/besttrade/report"
	"github.com/spf13/cobra"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the symbols in a price file",
	Long: `Print every symbol in the price file with its selection number. The
number can be passed to analyze in place of the symbol.

Example:
  besttrade symbols -d graph.txt`,
	Args: cobra.NoArgs,
	RunE: runSymbols,
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
	addDataFlags(symbolsCmd)
}

func runSymbols(cmd *cobra.Command, args []string) error {
	u, path, err := loadUniverse(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Symbols in %s\n\n", path)
	report.PrintMenu(out, u)
	return nil
}
