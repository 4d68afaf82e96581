package collector

import "CoinSentry/internal/model"

// Fetcher defines the interface for retrieving market data from an upstream
// provider. Implementations normalize provider payloads into model types,
// preserving absent fields as nil.
type Fetcher interface {
	FetchSnapshot(coinID string) (*model.MarketSnapshot, error)
	FetchPriceSeries(coinID string, days int) (model.PriceSeries, error)
	Name() string
}
