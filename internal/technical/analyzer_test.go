package technical

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"CoinSentry/internal/model"
)

func makeSeries(prices ...float64) model.PriceSeries {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	series := make(model.PriceSeries, len(prices))
	for i, p := range prices {
		series[i] = model.PricePoint{Time: base.AddDate(0, 0, i), Price: p}
	}
	return series
}

func constantSeries(price float64, n int) model.PriceSeries {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return makeSeries(prices...)
}

func risingSeries(n int) model.PriceSeries {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = float64(i + 1)
	}
	return makeSeries(prices...)
}

func TestAnalyze_InsufficientData(t *testing.T) {
	_, err := Analyze(risingSeries(9))
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData for 9 points, got %v", err)
	}

	if _, err := Analyze(risingSeries(10)); err != nil {
		t.Fatalf("expected 10 points to succeed, got %v", err)
	}
}

func TestAnalyze_MonotonicUptrend(t *testing.T) {
	got, err := Analyze(risingSeries(40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RecentTrend != model.TrendBullish {
		t.Errorf("expected BULLISH, got %s", got.RecentTrend)
	}
	if got.LongTrend != model.TrendUp {
		t.Errorf("expected UPTREND, got %s", got.LongTrend)
	}
	if got.Resistance != 40 {
		t.Errorf("expected resistance 40 (last price), got %v", got.Resistance)
	}
	if got.Support != 11 {
		t.Errorf("expected support 11 (30 points back), got %v", got.Support)
	}
	if math.Abs(got.MA7-37) > 1e-9 {
		t.Errorf("expected ma7=37, got %v", got.MA7)
	}
	if math.Abs(got.MA30-25.5) > 1e-9 {
		t.Errorf("expected ma30=25.5, got %v", got.MA30)
	}
}

func TestAnalyze_ShortSeriesWindowsShrink(t *testing.T) {
	got, err := Analyze(risingSeries(15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// With only 15 points the 30-window covers the whole series.
	if got.Support != 1 {
		t.Errorf("expected support at series start, got %v", got.Support)
	}
	if got.Resistance != 15 {
		t.Errorf("expected resistance 15, got %v", got.Resistance)
	}
}

func TestAnalyze_TiesResolveBearish(t *testing.T) {
	got, err := Analyze(constantSeries(100, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RecentTrend != model.TrendBearish {
		t.Errorf("price equal to ma7 must be BEARISH, got %s", got.RecentTrend)
	}
	if got.LongTrend != model.TrendDown {
		t.Errorf("ma7 equal to ma30 must be DOWNTREND, got %s", got.LongTrend)
	}
	if got.VolatilityPct != 0 {
		t.Errorf("expected zero volatility, got %v", got.VolatilityPct)
	}
	if got.VolatilityTier != model.VolatilityLow {
		t.Errorf("expected LOW volatility tier, got %s", got.VolatilityTier)
	}
	if got.Support != 100 || got.Resistance != 100 {
		t.Errorf("expected support=resistance=100, got %v/%v", got.Support, got.Resistance)
	}
}

func TestAnalyze_VolatilityTiers(t *testing.T) {
	alternating := func(a, b float64, n int) model.PriceSeries {
		prices := make([]float64, n)
		for i := range prices {
			if i%2 == 0 {
				prices[i] = a
			} else {
				prices[i] = b
			}
		}
		return makeSeries(prices...)
	}

	// Swings of ~26% per step put volatility far above 10%.
	high, err := Analyze(alternating(100, 130, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high.VolatilityTier != model.VolatilityHigh {
		t.Errorf("expected HIGH tier (%.1f%%), got %s", high.VolatilityPct, high.VolatilityTier)
	}

	// Swings of ~6% per step land between 5% and 10%.
	moderate, err := Analyze(alternating(100, 106, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moderate.VolatilityTier != model.VolatilityModerate {
		t.Errorf("expected MODERATE tier (%.1f%%), got %s", moderate.VolatilityPct, moderate.VolatilityTier)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	series := risingSeries(35)
	first, err := Analyze(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Analyze(series)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical assessments for identical input")
	}
}
