package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput   = errors.New("empty price series")
	ErrZeroBuyPrice = errors.New("buy price is zero")
	ErrIndexRange   = errors.New("recommendation index out of range")
)

// Recommendation is the best single buy/sell pair found in a price series.
// BuyIndex is always <= SellIndex and Profit is never negative.
type Recommendation struct {
	BuyIndex  int
	SellIndex int
	Profit    float64
}

// Profitable reports whether the recommendation describes an actual trade.
// A zero result (buy == sell) means no rising pair exists in the series.
func (r Recommendation) Profitable() bool {
	return r.BuyIndex < r.SellIndex
}

// FindBestTrade scans prices once, left to right, and returns the buy and
// sell indices that maximize prices[sell] - prices[buy] with buy <= sell.
//
// Ties favor the earliest point: a later trough equal to the current minimum
// does not move the buy index, and a later sell with equal profit does not
// replace the earlier one. Flat or falling series yield {0, 0, 0}.
func FindBestTrade(prices []float64) (Recommendation, error) {
	if len(prices) == 0 {
		return Recommendation{}, ErrEmptyInput
	}

	minPrice := prices[0]
	minIndex := 0
	var rec Recommendation

	for i := 1; i < len(prices); i++ {
		if prices[i] < minPrice {
			minPrice = prices[i]
			minIndex = i
		}
		profit := prices[i] - minPrice
		if profit > rec.Profit {
			rec = Recommendation{BuyIndex: minIndex, SellIndex: i, Profit: profit}
		}
	}
	return rec, nil
}

// PercentGain returns the gain of rec over prices as a percentage of the
// buy price.
func PercentGain(prices []float64, rec Recommendation) (float64, error) {
	if rec.BuyIndex < 0 || rec.SellIndex >= len(prices) || rec.BuyIndex > rec.SellIndex {
		return 0, fmt.Errorf("%w: buy=%d sell=%d len=%d", ErrIndexRange, rec.BuyIndex, rec.SellIndex, len(prices))
	}
	buy := prices[rec.BuyIndex]
	if buy == 0 {
		return 0, ErrZeroBuyPrice
	}
	return (prices[rec.SellIndex] - buy) / buy * 100, nil
}
