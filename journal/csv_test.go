package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rustyeddy/besttrade/pkg/id"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() AnalysisRecord {
	return AnalysisRecord{
		ID:         "01HQZX3Q7R8W9S0T1U2V3W4X5Y",
		Symbol:     "TSLA",
		BuyLabel:   "10",
		SellLabel:  "19",
		BuyPrice:   149.33,
		SellPrice:  156.91,
		Profit:     7.58,
		GainPct:    5.0760062,
		Profitable: true,
		Source:     "graph.txt",
		CreatedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()

	rows, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestCSVJournalHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analyses.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"id", "symbol", "buy_label", "sell_label", "buy_price", "sell_price",
		"profit", "gain_pct", "profitable", "source", "created_at",
	}, rows[0])
}

func TestCSVJournalRecordAnalysis(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analyses.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	rec := sampleRecord()
	require.NoError(t, j.RecordAnalysis(rec))

	flat := AnalysisRecord{ID: "X2", Symbol: "NFLX", BuyLabel: "04", SellLabel: "04", BuyPrice: 410, SellPrice: 410, CreatedAt: rec.CreatedAt}
	require.NoError(t, j.RecordAnalysis(flat))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"01HQZX3Q7R8W9S0T1U2V3W4X5Y",
		"TSLA",
		"10",
		"19",
		"149.330000",
		"156.910000",
		"7.580000",
		"5.076006",
		"true",
		"graph.txt",
		"2024-01-02T03:04:05Z",
	}, rows[1])
	assert.Equal(t, "false", rows[2][8])
	assert.Equal(t, "0.000000", rows[2][6])
}

func TestNewCSVBadPath(t *testing.T) {
	t.Parallel()

	_, err := NewCSV(filepath.Join(t.TempDir(), "missing", "analyses.csv"))
	assert.Error(t, err)
}

func TestCSVJournalReopenAppends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analyses.csv")

	first := sampleRecord()
	j, err := NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.RecordAnalysis(first))
	require.NoError(t, j.Close())

	second := sampleRecord()
	second.ID = "01HQZX3Q7R8W9S0T1V2V3W4X5Z"
	second.Symbol = "AAPL"
	j, err = NewCSV(path)
	require.NoError(t, err)
	require.NoError(t, j.RecordAnalysis(second))
	require.NoError(t, j.Close())

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "id", rows[0][0])
	assert.Equal(t, first.ID, rows[1][0])
	assert.Equal(t, second.ID, rows[2][0])
}

func TestCSVJournalCreatedAtFromID(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "analyses.csv")
	j, err := NewCSV(path)
	require.NoError(t, err)

	rec := sampleRecord()
	rec.ID = id.New()
	rec.CreatedAt = time.Time{}
	require.NoError(t, j.RecordAnalysis(rec))
	require.NoError(t, j.Close())

	want, err := id.Time(rec.ID)
	require.NoError(t, err)

	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, want.Format(time.RFC3339), rows[1][10])
}
