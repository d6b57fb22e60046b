package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rustyeddy/besttrade/analysis"
	"github.com/rustyeddy/besttrade/journal"
	"github.com/rustyeddy/besttrade/market"
	"github.com/rustyeddy/besttrade/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [symbol|number]",
	Short: "Find the best buy and sell hour for a stock",
	Long: `Print the hourly series of one stock and the buy/sell pair with the
largest gain. The stock is chosen by symbol or by its number from the symbols
listing. Without an argument the menu is shown and the choice is read from
stdin.

Examples:
  besttrade analyze TSLA
  besttrade analyze 7 --delay 1s
  besttrade analyze --all
  besttrade analyze AAPL --journal`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeDelay   string
	analyzeJournal bool
	analyzeQuiet   bool
	analyzeAll     bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addDataFlags(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeDelay, "delay", "", "pause between series lines, e.g. 1s (default from config)")
	analyzeCmd.Flags().BoolVarP(&analyzeJournal, "journal", "j", false, "record the result in the configured journal")
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "skip the series listing")
	analyzeCmd.Flags().BoolVar(&analyzeAll, "all", false, "analyze every symbol and print a summary table")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	u, path, err := loadUniverse(cmd)
	if err != nil {
		return err
	}

	var series []market.Series
	switch {
	case analyzeAll:
		if len(args) > 0 {
			return fmt.Errorf("--all takes no symbol")
		}
		series = u
	case len(args) == 1:
		s, err := u.Select(args[0])
		if err != nil {
			return err
		}
		series = []market.Series{s}
	default:
		s, err := prompt(cmd.InOrStdin(), cmd.OutOrStdout(), u)
		if err != nil {
			return err
		}
		series = []market.Series{s}
	}

	recs := make([]analysis.Recommendation, len(series))
	for i, s := range series {
		rec, err := analysis.FindBestTrade(s.Prices)
		if err != nil {
			return fmt.Errorf("%s: %w", s.Symbol, err)
		}
		recs[i] = rec
		logger.Debug("analysis",
			zap.String("symbol", s.Symbol),
			zap.Int("buy", rec.BuyIndex),
			zap.Int("sell", rec.SellIndex),
			zap.Float64("profit", rec.Profit))
	}

	out := cmd.OutOrStdout()
	if analyzeAll {
		printSummary(out, series, recs)
	} else if err := printSingle(cmd, series[0], recs[0]); err != nil {
		return err
	}

	if analyzeJournal {
		return record(out, series, recs, path)
	}
	return nil
}

func printSingle(cmd *cobra.Command, s market.Series, rec analysis.Recommendation) error {
	out := cmd.OutOrStdout()
	if !analyzeQuiet {
		delay := cfg.Report
		if cmd.Flags().Changed("delay") {
			delay.Delay = analyzeDelay
		}
		d, err := delay.ParseDelay()
		if err != nil {
			return fmt.Errorf("delay: %w", err)
		}
		report.PrintSeries(out, s, report.SleepPacer(d))
		fmt.Fprintln(out)
	}
	report.PrintRecommendation(out, s, rec)
	return nil
}

func printSummary(out io.Writer, series []market.Series, recs []analysis.Recommendation) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tBUY\tSELL\tPROFIT\tGAIN %")
	for i, s := range series {
		rec := recs[i]
		if !rec.Profitable() {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\n", s.Symbol)
			continue
		}
		gain := "-"
		if pct, err := analysis.PercentGain(s.Prices, rec); err == nil {
			gain = report.FormatPct(pct)
		}
		fmt.Fprintf(tw, "%s\t%s:30 @ %.2f\t%s:30 @ %.2f\t%.2f\t%s\n", s.Symbol,
			s.Label(rec.BuyIndex), s.Prices[rec.BuyIndex],
			s.Label(rec.SellIndex), s.Prices[rec.SellIndex],
			rec.Profit, gain)
	}
	tw.Flush()
}

func record(out io.Writer, series []market.Series, recs []analysis.Recommendation, source string) error {
	j, err := journal.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	return writeRecords(out, j, series, recs, source)
}

// writeRecords journals one record per series and closes j. A failed close is
// returned since buffered rows may not have reached disk.
func writeRecords(out io.Writer, j journal.Journal, series []market.Series, recs []analysis.Recommendation, source string) (err error) {
	defer func() {
		if cerr := j.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close journal: %w", cerr)
		}
	}()

	for i, s := range series {
		a := report.Summarize(s, recs[i], source)
		if err := j.RecordAnalysis(a); err != nil {
			return fmt.Errorf("record %s: %w", s.Symbol, err)
		}
		logger.Info("analysis journaled",
			zap.String("id", a.ID),
			zap.String("symbol", a.Symbol),
			zap.String("journal", cfg.Journal.Type))
		fmt.Fprintf(out, "Journaled %s as %s\n", a.Symbol, a.ID)
	}
	return nil
}

// prompt shows the menu and reads one selection from in.
func prompt(in io.Reader, out io.Writer, u market.Universe) (market.Series, error) {
	report.PrintMenu(out, u)
	fmt.Fprint(out, "\n\nPlease Select The Stocks You Want to Trade: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(line) == "") {
		return market.Series{}, fmt.Errorf("read selection: %w", err)
	}
	fmt.Fprintln(out)
	return u.Select(line)
}
