package calculator

import "errors"

// MovingAverage computes the arithmetic mean of the last `window` prices.
// When fewer prices are available the window shrinks to cover all of them
// instead of failing.
func MovingAverage(prices []float64, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(prices) == 0 {
		return 0, errors.New("no prices provided")
	}
	if len(prices) < window {
		window = len(prices)
	}
	sum := 0.0
	for i := len(prices) - window; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(window), nil
}
