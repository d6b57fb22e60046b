package journal

import (
	"time"

	"github.com/rustyeddy/besttrade/pkg/id"
)

// AnalysisRecord is one journaled best buy/sell result.
type AnalysisRecord struct {
	ID         string
	Symbol     string
	BuyLabel   string
	SellLabel  string
	BuyPrice   float64
	SellPrice  float64
	Profit     float64
	GainPct    float64
	Profitable bool
	Source     string
	CreatedAt  time.Time
}

// createdAt is the UTC creation time of a. Records without one fall back to
// the timestamp carried in a ULID ID, then to now.
func (a AnalysisRecord) createdAt() time.Time {
	if !a.CreatedAt.IsZero() {
		return a.CreatedAt.UTC()
	}
	if t, err := id.Time(a.ID); err == nil {
		return t
	}
	return time.Now().UTC()
}

type Journal interface {
	RecordAnalysis(AnalysisRecord) error
	Close() error
}
