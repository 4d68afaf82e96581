package calculator

import "math"

// LogReturns computes ln(price[i]/price[i-1]) for each consecutive pair.
// Prices must be positive; that is the caller's precondition.
func LogReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns = append(returns, math.Log(prices[i]/prices[i-1]))
	}
	return returns
}

// SampleStdDev computes the sample standard deviation (n-1 denominator).
// Returns 0 for fewer than two values.
func SampleStdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	varianceSum := 0.0
	for _, v := range values {
		varianceSum += (v - mean) * (v - mean)
	}
	return math.Sqrt(varianceSum / float64(n-1))
}
