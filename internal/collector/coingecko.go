package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"CoinSentry/internal/model"
)

// DefaultBaseURL is the public CoinGecko API v3 endpoint.
const DefaultBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoFetcher implements Fetcher against the CoinGecko REST API.
type CoinGeckoFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewCoinGeckoFetcher creates a fetcher with optional proxy support.
func NewCoinGeckoFetcher(baseURL, apiKey, proxyURL string) *CoinGeckoFetcher {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &CoinGeckoFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *CoinGeckoFetcher) Name() string { return "coingecko" }

// geckoCoin is the subset of the /coins/{id} response we consume.
// Map-valued fields are keyed by currency; a missing "usd" key means the
// provider did not report the figure.
type geckoCoin struct {
	ID             string   `json:"id"`
	CommunityScore *float64 `json:"community_score"`
	MarketData     struct {
		MarketCap           map[string]float64 `json:"market_cap"`
		TotalVolume         map[string]float64 `json:"total_volume"`
		ATHChangePercentage map[string]float64 `json:"ath_change_percentage"`
	} `json:"market_data"`
	DeveloperData struct {
		CommitCount4Weeks *int `json:"commit_count_4_weeks"`
	} `json:"developer_data"`
}

// FetchSnapshot retrieves and normalizes the market snapshot for a coin.
func (f *CoinGeckoFetcher) FetchSnapshot(coinID string) (*model.MarketSnapshot, error) {
	endpoint := fmt.Sprintf("%s/coins/%s?localization=false&tickers=false&community_data=true&developer_data=true&sparkline=false",
		f.BaseURL, url.PathEscape(coinID))

	var coin geckoCoin
	if err := f.getJSON(endpoint, &coin); err != nil {
		return nil, fmt.Errorf("fetch snapshot for %s: %w", coinID, err)
	}

	snap := &model.MarketSnapshot{
		CoinID:         coinID,
		CommunityScore: coin.CommunityScore,
	}
	if v, ok := coin.MarketData.MarketCap["usd"]; ok {
		snap.MarketCap = &v
	}
	if v, ok := coin.MarketData.TotalVolume["usd"]; ok {
		snap.Volume24h = &v
	}
	if v, ok := coin.MarketData.ATHChangePercentage["usd"]; ok {
		snap.ATHChangePct = v
	}
	if coin.DeveloperData.CommitCount4Weeks != nil {
		snap.DevCommits4w = *coin.DeveloperData.CommitCount4Weeks
	}
	return snap, nil
}

// geckoChart is the /coins/{id}/market_chart response. Each price entry is a
// [timestamp_ms, price] pair.
type geckoChart struct {
	Prices [][]float64 `json:"prices"`
}

// FetchPriceSeries retrieves the daily price history for the last `days`
// days, ordered by strictly increasing timestamps.
func (f *CoinGeckoFetcher) FetchPriceSeries(coinID string, days int) (model.PriceSeries, error) {
	endpoint := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily",
		f.BaseURL, url.PathEscape(coinID), days)

	var chart geckoChart
	if err := f.getJSON(endpoint, &chart); err != nil {
		return nil, fmt.Errorf("fetch price series for %s: %w", coinID, err)
	}

	series := make(model.PriceSeries, 0, len(chart.Prices))
	for _, pair := range chart.Prices {
		if len(pair) < 2 || pair[1] <= 0 {
			continue
		}
		series = append(series, model.PricePoint{
			Time:  time.UnixMilli(int64(pair[0])),
			Price: pair[1],
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Time.Before(series[j].Time) })

	// Drop duplicate timestamps so the series stays strictly increasing.
	deduped := series[:0]
	for i, p := range series {
		if i > 0 && !p.Time.After(deduped[len(deduped)-1].Time) {
			continue
		}
		deduped = append(deduped, p)
	}
	return deduped, nil
}

func (f *CoinGeckoFetcher) getJSON(endpoint string, out any) error {
	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if f.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
