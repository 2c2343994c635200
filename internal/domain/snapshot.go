package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is a saved, immutable copy of a parameter set and its projection.
type Snapshot struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Timestamp    time.Time            `json:"timestamp"`
	Parameters   SimulationParameters `json:"parameters"`
	RunwayMonths int                  `json:"runway_months"`
	Series       ProjectionSeries     `json:"series"`
	DisplayColor string               `json:"display_color"`
	// Seq numbers saves from 1 and is never reused after a delete
	Seq int `json:"seq"`
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	s.Series = s.Series.Clone()
	return s
}

// SnapshotDelta compares one snapshot against a reference snapshot
type SnapshotDelta struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	RunwayMonths   int             `json:"runway_months"`
	RunwayDelta    int             `json:"runway_delta"`
	FinalCash      decimal.Decimal `json:"final_cash"`
	FinalCashDelta decimal.Decimal `json:"final_cash_delta"`
	DisplayColor   string          `json:"display_color"`
	IsReference    bool            `json:"is_reference"`
}
