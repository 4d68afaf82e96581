package model

import "time"

// MarketSnapshot is a point-in-time view of an asset's market fundamentals.
// Pointer fields are nil when the upstream provider did not report them;
// they must never be coerced to zero. DevCommits4w and ATHChangePct default
// to 0 when absent, which is part of the scoring contract.
type MarketSnapshot struct {
	CoinID         string   `json:"coin_id"`
	MarketCap      *float64 `json:"market_cap"`
	Volume24h      *float64 `json:"volume_24h"`
	DevCommits4w   int      `json:"dev_commits_4w"`
	CommunityScore *float64 `json:"community_score"`
	ATHChangePct   float64  `json:"ath_change_pct"`
}

// PricePoint is a single observation in a price history. Price is always > 0.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}

// PriceSeries is a price history ordered by strictly increasing timestamps.
// It is constructed fresh per analysis request and never mutated in place.
type PriceSeries []PricePoint

// Prices returns the price values in series order.
func (s PriceSeries) Prices() []float64 {
	prices := make([]float64, len(s))
	for i, p := range s {
		prices[i] = p.Price
	}
	return prices
}

// Last returns the most recent price, or 0 for an empty series.
func (s PriceSeries) Last() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Price
}
