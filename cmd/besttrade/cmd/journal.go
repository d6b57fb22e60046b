package cmd

import (
	"fmt"
	"time"

	"github.com/rustyeddy/besttrade/journal"
	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query journaled analyses",
	Long: `Query and display analysis records from the SQLite journal.

Subcommands:
  show    - Get details of a specific analysis by ID
  today   - List analyses recorded today
  day     - List analyses recorded on a specific day
  symbol  - List the latest analyses for a symbol

Examples:
  besttrade journal show <id>
  besttrade journal today
  besttrade journal day 2024-01-15
  besttrade journal symbol TSLA --limit 5`,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Get details of a specific analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List analyses recorded today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List analyses recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalSymbolCmd = &cobra.Command{
	Use:   "symbol <symbol>",
	Short: "List the latest analyses for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalSymbol,
}

var (
	journalDBPath string
	journalLimit  int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalSymbolCmd)

	journalCmd.PersistentFlags().StringVar(&journalDBPath, "db", "", "path to SQLite journal DB (default from config)")
	journalSymbolCmd.Flags().IntVarP(&journalLimit, "limit", "n", 10, "maximum records to show (0 for all)")
}

func openJournalDB(cmd *cobra.Command) (*journal.SQLite, error) {
	path := journalDBPath
	if !cmd.Flags().Changed("db") {
		if cfg.Journal.Type != "sqlite" {
			return nil, fmt.Errorf("journal queries need a sqlite journal (configured: %s)", cfg.Journal.Type)
		}
		path = cfg.Journal.Path
	}
	j, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return j, nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetAnalysis(args[0])
	if err != nil {
		return fmt.Errorf("get analysis: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatAnalysisOrg(rec))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	return listDay(cmd, time.Now().In(time.Local).Format("2006-01-02"))
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(cmd, args[0])
}

func listDay(cmd *cobra.Command, day string) error {
	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	j, err := openJournalDB(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListAnalysesBetween(start, end)
	if err != nil {
		return fmt.Errorf("query analyses: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatAnalysesOrg(recs))
	return nil
}

func runJournalSymbol(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB(cmd)
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListAnalysesBySymbol(args[0], journalLimit)
	if err != nil {
		return fmt.Errorf("query analyses: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), journal.FormatAnalysesOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start, end, nil
}
