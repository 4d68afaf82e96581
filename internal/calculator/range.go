package calculator

import (
	"errors"
	"math"
)

// TrailingRange scans the last `window` prices and returns the high and low.
// When fewer prices are available the window shrinks to cover all of them.
func TrailingRange(prices []float64, window int) (high, low float64, err error) {
	if window <= 0 {
		return 0, 0, errors.New("window must be positive")
	}
	if len(prices) == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	n := len(prices)
	start := n - window
	if start < 0 {
		start = 0
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for i := start; i < n; i++ {
		if prices[i] > high {
			high = prices[i]
		}
		if prices[i] < low {
			low = prices[i]
		}
	}
	return high, low, nil
}
