package collector

import (
	"time"

	"CoinSentry/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Snapshot  *model.MarketSnapshot
	Series    model.PriceSeries
	SeriesErr error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSnapshot(coinID string) (*model.MarketSnapshot, error) {
	if m.Snapshot != nil {
		snap := *m.Snapshot
		snap.CoinID = coinID
		return &snap, nil
	}
	mcap := 2e9
	vol := 3e8
	community := 80.0
	return &model.MarketSnapshot{
		CoinID:         coinID,
		MarketCap:      &mcap,
		Volume24h:      &vol,
		DevCommits4w:   60,
		CommunityScore: &community,
		ATHChangePct:   -10,
	}, nil
}

func (m *MockFetcher) FetchPriceSeries(coinID string, days int) (model.PriceSeries, error) {
	if m.SeriesErr != nil {
		return nil, m.SeriesErr
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return GenerateMockSeries(100, days), nil
}

// GenerateMockSeries builds a gently rising daily series ending today.
func GenerateMockSeries(basePrice float64, count int) model.PriceSeries {
	series := make(model.PriceSeries, count)
	for i := 0; i < count; i++ {
		series[i] = model.PricePoint{
			Time:  time.Now().AddDate(0, 0, -(count - i)),
			Price: basePrice * (1 + float64(i)*0.002),
		}
	}
	return series
}
