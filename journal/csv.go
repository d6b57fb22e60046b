package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"id", "symbol", "buy_label", "sell_label", "buy_price", "sell_price",
	"profit", "gain_pct", "profitable", "source", "created_at",
}

type CSVJournal struct {
	w *csv.Writer
	f *os.File
}

// NewCSV opens path for appending, creating it if needed. The header row is
// written only when the file is empty, so earlier records are kept.
func NewCSV(path string) (*CSVJournal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	w := csv.NewWriter(f)
	if st.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			f.Close()
			return nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &CSVJournal{w: w, f: f}, nil
}

func (j *CSVJournal) RecordAnalysis(a AnalysisRecord) error {
	err := j.w.Write([]string{
		a.ID,
		a.Symbol,
		a.BuyLabel,
		a.SellLabel,
		f(a.BuyPrice),
		f(a.SellPrice),
		f(a.Profit),
		f(a.GainPct),
		strconv.FormatBool(a.Profitable),
		a.Source,
		a.createdAt().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.w.Flush()
	return j.w.Error()
}

func (j *CSVJournal) Close() error {
	j.w.Flush()
	if err := j.w.Error(); err != nil {
		j.f.Close()
		return err
	}
	return j.f.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
