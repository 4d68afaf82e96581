// Package technical derives trend, volatility, and support/resistance
// metrics from a price series.
package technical

import (
	"errors"

	"CoinSentry/internal/calculator"
	"CoinSentry/internal/model"
)

// MinPoints is the smallest series the analyzer accepts. Anything shorter
// produces statistically meaningless trend and volatility figures.
const MinPoints = 10

// ErrInsufficientData is returned when the price series is too short.
var ErrInsufficientData = errors.New("insufficient price data for technical analysis")

// Analyze computes all technical metrics for the series. The moving-average
// windows shrink gracefully when fewer points are available, but a series
// below MinPoints is rejected outright.
func Analyze(series model.PriceSeries) (*model.TechnicalAssessment, error) {
	if len(series) < MinPoints {
		return nil, ErrInsufficientData
	}
	prices := series.Prices()

	ma7, err := calculator.MovingAverage(prices, 7)
	if err != nil {
		return nil, err
	}
	ma30, err := calculator.MovingAverage(prices, 30)
	if err != nil {
		return nil, err
	}

	// Ties resolve to the bearish branch: only a strictly higher price or
	// strictly higher ma7 counts as bullish.
	current := prices[len(prices)-1]
	recentTrend := model.TrendBearish
	if current > ma7 {
		recentTrend = model.TrendBullish
	}
	longTrend := model.TrendDown
	if ma7 > ma30 {
		longTrend = model.TrendUp
	}

	volatilityPct := calculator.SampleStdDev(calculator.LogReturns(prices)) * 100

	// Same trailing window as ma30, scanned independently.
	resistance, support, err := calculator.TrailingRange(prices, 30)
	if err != nil {
		return nil, err
	}

	return &model.TechnicalAssessment{
		RecentTrend:    recentTrend,
		LongTrend:      longTrend,
		VolatilityPct:  volatilityPct,
		VolatilityTier: volatilityTier(volatilityPct),
		MA7:            ma7,
		MA30:           ma30,
		Support:        support,
		Resistance:     resistance,
	}, nil
}

func volatilityTier(pct float64) model.VolatilityTier {
	switch {
	case pct > 10:
		return model.VolatilityHigh
	case pct > 5:
		return model.VolatilityModerate
	default:
		return model.VolatilityLow
	}
}
