package advisor

import (
	"strings"
	"testing"

	"CoinSentry/internal/model"
)

func assessment(score int) model.FundamentalAssessment {
	return model.FundamentalAssessment{TotalScore: score}
}

func TestSynthesize_HorizonByScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{95, suggestLongTerm},
		{70, suggestLongTerm},
		{69, suggestMediumTerm},
		{40, suggestMediumTerm},
		{39, suggestHighRisk},
		{0, suggestHighRisk},
	}
	for _, tt := range tests {
		rec := Synthesize(assessment(tt.score), model.TrendBullish)
		if rec.Suggestions[0] != tt.want {
			t.Errorf("score %d: expected %q first, got %q", tt.score, tt.want, rec.Suggestions[0])
		}
	}
}

func TestSynthesize_EntryTimingByTrend(t *testing.T) {
	bullish := Synthesize(assessment(50), model.TrendBullish)
	if bullish.Suggestions[1] != suggestBullishEntry {
		t.Errorf("expected bullish entry suggestion, got %q", bullish.Suggestions[1])
	}

	bearish := Synthesize(assessment(50), model.TrendBearish)
	if bearish.Suggestions[1] != suggestBearishEntry {
		t.Errorf("expected bearish entry suggestion, got %q", bearish.Suggestions[1])
	}
}

func TestSynthesize_FixedOrderAndDisclaimer(t *testing.T) {
	rec := Synthesize(assessment(95), model.TrendBullish)
	if len(rec.Suggestions) != 3 {
		t.Fatalf("expected exactly 3 suggestions, got %d", len(rec.Suggestions))
	}
	if rec.Suggestions[2] != suggestCapital {
		t.Errorf("expected capital-preservation reminder last, got %q", rec.Suggestions[2])
	}
	if rec.Disclaimer == "" {
		t.Fatal("expected a disclaimer")
	}
	for _, s := range rec.Suggestions {
		if s == rec.Disclaimer {
			t.Error("disclaimer must not appear inside the suggestion list")
		}
	}
	if !strings.Contains(rec.Disclaimer, "not financial advice") {
		t.Errorf("unexpected disclaimer text: %q", rec.Disclaimer)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	a := Synthesize(assessment(55), model.TrendBearish)
	b := Synthesize(assessment(55), model.TrendBearish)
	if len(a.Suggestions) != len(b.Suggestions) {
		t.Fatal("expected identical output")
	}
	for i := range a.Suggestions {
		if a.Suggestions[i] != b.Suggestions[i] {
			t.Errorf("suggestion %d differs between identical calls", i)
		}
	}
}
