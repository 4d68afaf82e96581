package collector

import (
	"errors"
	"strings"
	"testing"

	"CoinSentry/internal/model"
)

func TestAssess_EndToEnd(t *testing.T) {
	col := NewCollector(&MockFetcher{}, 40)

	a, err := col.Assess("bitcoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.CoinID != "bitcoin" {
		t.Errorf("expected coin id bitcoin, got %s", a.CoinID)
	}
	if a.Fundamental.TotalScore != 95 {
		t.Errorf("expected score 95 from the mock snapshot, got %d", a.Fundamental.TotalScore)
	}
	if a.Fundamental.RiskTier != model.RiskLow {
		t.Errorf("expected LOW, got %s", a.Fundamental.RiskTier)
	}
	if a.Technical == nil {
		t.Fatal("expected technical assessment from the mock series")
	}
	if a.Technical.RecentTrend != model.TrendBullish {
		t.Errorf("rising mock series should be BULLISH, got %s", a.Technical.RecentTrend)
	}

	sugg := a.Recommendation.Suggestions
	if len(sugg) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(sugg))
	}
	if !strings.Contains(sugg[0], "long-term") {
		t.Errorf("expected long-term horizon suggestion first, got %q", sugg[0])
	}
	if !strings.Contains(sugg[1], "favorable entry") {
		t.Errorf("expected entry-timing suggestion second, got %q", sugg[1])
	}
	if !strings.Contains(sugg[2], "afford to lose") {
		t.Errorf("expected capital-preservation reminder last, got %q", sugg[2])
	}
	if a.Recommendation.Disclaimer == "" {
		t.Error("expected a disclaimer")
	}
}

func TestAssess_SeriesUnavailable(t *testing.T) {
	col := NewCollector(&MockFetcher{SeriesErr: errors.New("rate limited")}, 40)

	a, err := col.Assess("ethereum")
	if err != nil {
		t.Fatalf("a missing series must not fail the assessment: %v", err)
	}
	if a.Technical != nil {
		t.Error("expected nil technical assessment when the series is unavailable")
	}
	// Entry timing falls back to the conservative bearish branch.
	if len(a.Recommendation.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(a.Recommendation.Suggestions))
	}
}

func TestAssess_ShortSeriesDegrades(t *testing.T) {
	col := NewCollector(&MockFetcher{Series: GenerateMockSeries(100, 9)}, 9)

	a, err := col.Assess("dogecoin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Technical != nil {
		t.Error("expected technical analysis to be skipped below 10 points")
	}
}
