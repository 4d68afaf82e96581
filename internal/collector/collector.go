// Package collector retrieves market data and orchestrates the analysis
// engine over it. The engine packages themselves stay pure; all I/O and
// degradation decisions live here.
package collector

import (
	"errors"
	"fmt"
	"log"
	"time"

	"CoinSentry/internal/advisor"
	"CoinSentry/internal/fundamental"
	"CoinSentry/internal/model"
	"CoinSentry/internal/technical"
)

// Collector fetches market data for a coin and runs the full assessment.
type Collector struct {
	Fetcher    Fetcher
	SeriesDays int
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, seriesDays int) *Collector {
	return &Collector{Fetcher: fetcher, SeriesDays: seriesDays}
}

// Assess produces a complete assessment for one coin. A missing or too-short
// price series degrades to a fundamentals-only assessment (Technical nil,
// entry timing treated as bearish); a missing snapshot is a hard failure.
func (c *Collector) Assess(coinID string) (*model.AssetAssessment, error) {
	snap, err := c.Fetcher.FetchSnapshot(coinID)
	if err != nil {
		return nil, fmt.Errorf("collect snapshot: %w", err)
	}

	fund := fundamental.Score(snap)

	var tech *model.TechnicalAssessment
	trend := model.TrendBearish
	series, err := c.Fetcher.FetchPriceSeries(coinID, c.SeriesDays)
	switch {
	case err != nil:
		log.Printf("[WARN] price series unavailable for %s, skipping technical analysis: %v", coinID, err)
	case len(series) > 0:
		ta, err := technical.Analyze(series)
		if err != nil {
			if errors.Is(err, technical.ErrInsufficientData) {
				log.Printf("[WARN] only %d price points for %s, skipping technical analysis", len(series), coinID)
			} else {
				log.Printf("[ERROR] technical analysis for %s: %v", coinID, err)
			}
		} else {
			tech = ta
			trend = ta.RecentTrend
		}
	}

	return &model.AssetAssessment{
		CoinID:         coinID,
		GeneratedAt:    time.Now().UTC(),
		Snapshot:       snap,
		Fundamental:    fund,
		Technical:      tech,
		Recommendation: advisor.Synthesize(fund, trend),
	}, nil
}
