package market

import (
	"fmt"
	"math"
)

// PriceSeries holds sampled prices of one instrument at evenly spaced points.
type PriceSeries []float64

// Series is a PriceSeries with its symbol and a parallel slice of labels.
// Labels[i] names the sample Prices[i] (an hour like "09" in the graph files).
type Series struct {
	Symbol string
	Labels []string
	Prices PriceSeries
}

func (s Series) Len() int {
	return len(s.Prices)
}

// Label returns the label for index i, or the index itself when the series
// carries no label there.
func (s Series) Label(i int) string {
	if i >= 0 && i < len(s.Labels) {
		return s.Labels[i]
	}
	return fmt.Sprintf("%d", i)
}

// Validate checks the series can be handed to the analysis code.
func (s Series) Validate() error {
	if s.Symbol == "" {
		return fmt.Errorf("series symbol is required")
	}
	if len(s.Prices) == 0 {
		return fmt.Errorf("series %s: no prices", s.Symbol)
	}
	if len(s.Labels) != len(s.Prices) {
		return fmt.Errorf("series %s: %d labels for %d prices", s.Symbol, len(s.Labels), len(s.Prices))
	}
	for i, p := range s.Prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("series %s: price %d is not finite", s.Symbol, i)
		}
		if p < 0 {
			return fmt.Errorf("series %s: price %d is negative (%f)", s.Symbol, i, p)
		}
	}
	return nil
}

// Changes returns the percent change of each sample against the previous one.
// The first element is always 0, as is any step from a zero price.
func (s Series) Changes() []float64 {
	out := make([]float64, len(s.Prices))
	for k := 1; k < len(s.Prices); k++ {
		prev := s.Prices[k-1]
		if prev == 0 {
			continue
		}
		out[k] = (s.Prices[k] - prev) / prev * 100
	}
	return out
}
