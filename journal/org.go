package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatAnalysisOrg renders an AnalysisRecord as an Org-mode block. The facts
// live in a PROPERTIES drawer so org search can find them; the Notes heading
// is left for the reader.
func FormatAnalysisOrg(a AnalysisRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Analysis: %s (%s)\n", a.Symbol, shortID(a.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", a.ID)
	fmt.Fprintf(&b, ":SYMBOL: %s\n", a.Symbol)
	fmt.Fprintf(&b, ":SOURCE: %s\n", a.Source)
	fmt.Fprintf(&b, ":CREATED: %s\n", a.CreatedAt.UTC().Format(time.RFC3339))
	if a.Profitable {
		fmt.Fprintf(&b, ":BUY: %s @ %.2f\n", a.BuyLabel, a.BuyPrice)
		fmt.Fprintf(&b, ":SELL: %s @ %.2f\n", a.SellLabel, a.SellPrice)
		fmt.Fprintf(&b, ":PROFIT: %.2f\n", a.Profit)
		fmt.Fprintf(&b, ":GAIN_PCT: %.2f\n", a.GainPct)
	} else {
		b.WriteString(":RESULT: no profitable buy-sell time\n")
	}
	b.WriteString(":END:\n")
	b.WriteString("\n")
	b.WriteString("*** Notes\n- \n")

	return b.String()
}

// FormatAnalysesOrg renders multiple records separated by blank lines.
func FormatAnalysesOrg(recs []AnalysisRecord) string {
	var b strings.Builder
	for i, a := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatAnalysisOrg(a))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
