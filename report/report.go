package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rustyeddy/besttrade/analysis"
	"github.com/rustyeddy/besttrade/journal"
	"github.com/rustyeddy/besttrade/market"
	"github.com/rustyeddy/besttrade/pkg/id"
	"github.com/shopspring/decimal"
)

// Pacer is called between series lines. SleepPacer(d) reproduces the
// line-by-line ticker display; nil prints everything at once.
type Pacer func()

func SleepPacer(d time.Duration) Pacer {
	if d <= 0 {
		return nil
	}
	return func() { time.Sleep(d) }
}

// PrintMenu lists symbols with their 1-based selection numbers.
func PrintMenu(w io.Writer, u market.Universe) {
	for i, sym := range u.Symbols() {
		fmt.Fprintf(w, "%d. %s\n", i+1, sym)
	}
}

// PrintSeries prints each sample with its percent change from the previous one.
func PrintSeries(w io.Writer, s market.Series, pace Pacer) {
	changes := s.Changes()
	for k, p := range s.Prices {
		if k > 0 && pace != nil {
			pace()
		}
		fmt.Fprintf(w, " - Time: %s:30, Price: %.2f, Profit: %% %.2f\n", s.Label(k), p, changes[k])
	}
}

// PrintRecommendation prints the best buy and sell points of s, or a notice
// when the series never rises.
func PrintRecommendation(w io.Writer, s market.Series, rec analysis.Recommendation) {
	if !rec.Profitable() {
		fmt.Fprintln(w, "No profitable buy-sell time found.")
		return
	}

	fmt.Fprintf(w, "Best time to buy: %s:30 at price %.2f\n", s.Label(rec.BuyIndex), s.Prices[rec.BuyIndex])
	fmt.Fprintf(w, "Best time to sell: %s:30 at price %.2f\n", s.Label(rec.SellIndex), s.Prices[rec.SellIndex])

	pct, err := analysis.PercentGain(s.Prices, rec)
	switch {
	case errors.Is(err, analysis.ErrZeroBuyPrice):
		fmt.Fprintf(w, "Maximum profit: %.2f (buy price is zero)\n", rec.Profit)
	case err != nil:
		fmt.Fprintf(w, "Maximum profit: %.2f\n", rec.Profit)
	default:
		fmt.Fprintf(w, "Maximum profit: %% %s\n", FormatPct(pct))
	}
}

// FormatPct rounds a percentage half away from zero to two places. Rounding
// the shortest decimal form avoids %.2f turning 2.675 into 2.67.
func FormatPct(pct float64) string {
	return decimal.NewFromFloat(pct).StringFixed(2)
}

// Summarize builds the journal record for rec over s.
func Summarize(s market.Series, rec analysis.Recommendation, source string) journal.AnalysisRecord {
	now := time.Now().UTC()
	out := journal.AnalysisRecord{
		ID:         id.NewAt(now),
		Symbol:     s.Symbol,
		BuyLabel:   s.Label(rec.BuyIndex),
		SellLabel:  s.Label(rec.SellIndex),
		Profit:     rec.Profit,
		Profitable: rec.Profitable(),
		Source:     source,
		CreatedAt:  now,
	}
	if rec.SellIndex < len(s.Prices) {
		out.BuyPrice = s.Prices[rec.BuyIndex]
		out.SellPrice = s.Prices[rec.SellIndex]
	}
	if out.Profitable {
		if pct, err := analysis.PercentGain(s.Prices, rec); err == nil {
			out.GainPct = decimal.NewFromFloat(pct).Round(4).InexactFloat64()
		}
	}
	return out
}
