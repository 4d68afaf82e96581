package model

import "time"

// RiskTier classifies an asset by its fundamental score.
type RiskTier string

const (
	RiskLow      RiskTier = "LOW"
	RiskMedium   RiskTier = "MEDIUM"
	RiskHigh     RiskTier = "HIGH"
	RiskVeryHigh RiskTier = "VERY_HIGH"
)

// Color returns the display color associated with the tier. The mapping is
// part of the public contract so any UI renders tiers consistently.
func (t RiskTier) Color() string {
	switch t {
	case RiskLow:
		return "green"
	case RiskMedium:
		return "amber"
	case RiskHigh:
		return "orange"
	default:
		return "red"
	}
}

// FactorCategory names a fundamental scoring dimension.
type FactorCategory string

const (
	FactorMarketCap   FactorCategory = "market_cap"
	FactorVolumeRatio FactorCategory = "volume_ratio"
	FactorDevelopment FactorCategory = "development"
	FactorCommunity   FactorCategory = "community"
	FactorATHDistance FactorCategory = "ath_distance"
)

// FundamentalFactor is one evaluated scoring dimension with its narrative.
type FundamentalFactor struct {
	Category  FactorCategory `json:"category"`
	Points    int            `json:"points"`
	Narrative string         `json:"narrative"`
}

// FundamentalAssessment is the output of the fundamental scorer. Factors are
// listed in evaluation order, not score order.
type FundamentalAssessment struct {
	TotalScore int                 `json:"total_score"`
	RiskTier   RiskTier            `json:"risk_tier"`
	RiskColor  string              `json:"risk_color"`
	Factors    []FundamentalFactor `json:"factors"`
}

// Trend classifies the short-term price direction.
type Trend string

const (
	TrendBullish Trend = "BULLISH"
	TrendBearish Trend = "BEARISH"
)

// LongTrend classifies the longer-horizon direction from MA crossover.
type LongTrend string

const (
	TrendUp   LongTrend = "UPTREND"
	TrendDown LongTrend = "DOWNTREND"
)

// VolatilityTier classifies recent return dispersion.
type VolatilityTier string

const (
	VolatilityLow      VolatilityTier = "LOW"
	VolatilityModerate VolatilityTier = "MODERATE"
	VolatilityHigh     VolatilityTier = "HIGH"
)

// TechnicalAssessment holds all computed technical metrics.
type TechnicalAssessment struct {
	RecentTrend    Trend          `json:"recent_trend"`
	LongTrend      LongTrend      `json:"long_trend"`
	VolatilityPct  float64        `json:"volatility_pct"`
	VolatilityTier VolatilityTier `json:"volatility_tier"`
	MA7            float64        `json:"ma7"`
	MA30           float64        `json:"ma30"`
	Support        float64        `json:"support"`
	Resistance     float64        `json:"resistance"`
}

// Recommendation is the synthesized advice for an asset. The disclaimer is
// kept apart from the suggestions so a consumer can style it differently.
type Recommendation struct {
	Suggestions []string `json:"suggestions"`
	Disclaimer  string   `json:"disclaimer"`
}

// AssetAssessment bundles the full analysis of one asset together with the
// snapshot it was derived from. Technical is nil when no usable price series
// was available for the run.
type AssetAssessment struct {
	CoinID         string                `json:"coin_id"`
	GeneratedAt    time.Time             `json:"generated_at"`
	Snapshot       *MarketSnapshot       `json:"snapshot,omitempty"`
	Fundamental    FundamentalAssessment `json:"fundamental"`
	Technical      *TechnicalAssessment  `json:"technical,omitempty"`
	Recommendation Recommendation        `json:"recommendation"`
}
