package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMovingAverage_FullWindow(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ma, err := MovingAverage(prices, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(ma, 8) { // mean of 6..10
		t.Errorf("expected 8, got %v", ma)
	}
}

func TestMovingAverage_ShrinksWindow(t *testing.T) {
	prices := []float64{2, 4, 6}
	ma, err := MovingAverage(prices, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(ma, 4) {
		t.Errorf("expected window to shrink to all points (mean 4), got %v", ma)
	}
}

func TestMovingAverage_Errors(t *testing.T) {
	if _, err := MovingAverage(nil, 7); err == nil {
		t.Error("expected error for empty prices")
	}
	if _, err := MovingAverage([]float64{1}, 0); err == nil {
		t.Error("expected error for non-positive window")
	}
}

func TestTrailingRange(t *testing.T) {
	prices := []float64{5, 1, 9, 3, 7}
	high, low, err := TrailingRange(prices, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 9 || low != 3 {
		t.Errorf("expected high=9 low=3, got high=%v low=%v", high, low)
	}

	// Window larger than the series covers everything.
	high, low, err = TrailingRange(prices, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if high != 9 || low != 1 {
		t.Errorf("expected high=9 low=1, got high=%v low=%v", high, low)
	}
}

func TestLogReturns(t *testing.T) {
	returns := LogReturns([]float64{100, 110, 99})
	if len(returns) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(returns))
	}
	if !almostEqual(returns[0], math.Log(1.1)) {
		t.Errorf("expected ln(1.1), got %v", returns[0])
	}
	if !almostEqual(returns[1], math.Log(0.9)) {
		t.Errorf("expected ln(0.9), got %v", returns[1])
	}
	if LogReturns([]float64{100}) != nil {
		t.Error("expected nil for a single price")
	}
}

func TestSampleStdDev(t *testing.T) {
	// Known sample std dev: {2,4,4,4,5,5,7,9} has variance 32/7.
	got := SampleStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	want := math.Sqrt(32.0 / 7.0)
	if !almostEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if SampleStdDev([]float64{1}) != 0 {
		t.Error("expected 0 for fewer than two values")
	}
	if SampleStdDev([]float64{3, 3, 3}) != 0 {
		t.Error("expected 0 for constant values")
	}
}
