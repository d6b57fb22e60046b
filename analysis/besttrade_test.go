package analysis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestTrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prices []float64
		want   Recommendation
	}{
		{
			name:   "single element",
			prices: []float64{5},
			want:   Recommendation{},
		},
		{
			name:   "classic",
			prices: []float64{7, 1, 5, 3, 6, 4},
			want:   Recommendation{BuyIndex: 1, SellIndex: 4, Profit: 5},
		},
		{
			name:   "strictly descending",
			prices: []float64{7, 6, 4, 3, 1},
			want:   Recommendation{},
		},
		{
			name:   "earliest pair wins ties",
			prices: []float64{1, 2, 1, 2, 1, 2},
			want:   Recommendation{BuyIndex: 0, SellIndex: 1, Profit: 1},
		},
		{
			name:   "all equal",
			prices: []float64{3.5, 3.5, 3.5, 3.5},
			want:   Recommendation{},
		},
		{
			name:   "later lower trough wins",
			prices: []float64{4, 6, 1, 5},
			want:   Recommendation{BuyIndex: 2, SellIndex: 3, Profit: 4},
		},
		{
			name:   "equal trough keeps earliest buy",
			prices: []float64{2, 1, 3, 1, 3},
			want:   Recommendation{BuyIndex: 1, SellIndex: 2, Profit: 2},
		},
		{
			name:   "sell at last index",
			prices: []float64{10, 9, 8, 20},
			want:   Recommendation{BuyIndex: 2, SellIndex: 3, Profit: 12},
		},
		{
			name:   "zero prices",
			prices: []float64{0, 0, 2},
			want:   Recommendation{BuyIndex: 0, SellIndex: 2, Profit: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindBestTrade(tt.prices)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindBestTradeEmpty(t *testing.T) {
	t.Parallel()

	rec, err := FindBestTrade(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, Recommendation{}, rec)

	_, err = FindBestTrade([]float64{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFindBestTradeDoesNotMutate(t *testing.T) {
	t.Parallel()

	prices := []float64{7, 1, 5, 3, 6, 4}
	orig := append([]float64(nil), prices...)

	first, err := FindBestTrade(prices)
	require.NoError(t, err)
	second, err := FindBestTrade(prices)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, orig, prices)
}

// bruteForce checks every pair with b <= s, visiting sells in order and buys
// in order so the first strict improvement is the earliest pair.
func bruteForce(prices []float64) Recommendation {
	var best Recommendation
	for s := 0; s < len(prices); s++ {
		for b := 0; b <= s; b++ {
			if p := prices[s] - prices[b]; p > best.Profit {
				best = Recommendation{BuyIndex: b, SellIndex: s, Profit: p}
			}
		}
	}
	return best
}

func TestFindBestTradeMatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		n := 1 + rng.Intn(40)
		prices := make([]float64, n)
		for i := range prices {
			// small integer range forces plenty of ties
			prices[i] = float64(rng.Intn(10))
		}

		got, err := FindBestTrade(prices)
		require.NoError(t, err)

		assert.LessOrEqual(t, 0, got.BuyIndex)
		assert.LessOrEqual(t, got.BuyIndex, got.SellIndex)
		assert.Less(t, got.SellIndex, n)
		assert.GreaterOrEqual(t, got.Profit, 0.0)
		assert.Equal(t, prices[got.SellIndex]-prices[got.BuyIndex], got.Profit)
		assert.Equal(t, bruteForce(prices), got, "prices=%v", prices)
	}
}

func TestRecommendationProfitable(t *testing.T) {
	t.Parallel()

	assert.False(t, Recommendation{}.Profitable())
	assert.True(t, Recommendation{BuyIndex: 1, SellIndex: 4, Profit: 5}.Profitable())
}

func TestPercentGain(t *testing.T) {
	t.Parallel()

	prices := []float64{7, 1, 5, 3, 6, 4}
	rec, err := FindBestTrade(prices)
	require.NoError(t, err)

	pct, err := PercentGain(prices, rec)
	require.NoError(t, err)
	assert.InDelta(t, 500.0, pct, 1e-9)

	pct, err = PercentGain([]float64{4, 5}, Recommendation{BuyIndex: 0, SellIndex: 1, Profit: 1})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, pct, 1e-9)
}

func TestPercentGainErrors(t *testing.T) {
	t.Parallel()

	_, err := PercentGain([]float64{0, 0, 2}, Recommendation{BuyIndex: 0, SellIndex: 2, Profit: 2})
	assert.ErrorIs(t, err, ErrZeroBuyPrice)

	_, err = PercentGain([]float64{1, 2}, Recommendation{BuyIndex: 0, SellIndex: 5})
	assert.ErrorIs(t, err, ErrIndexRange)

	_, err = PercentGain(nil, Recommendation{})
	assert.ErrorIs(t, err, ErrIndexRange)
}
