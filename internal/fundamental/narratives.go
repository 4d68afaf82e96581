package fundamental

import "math"

// scoreTier is one row of a dimension's threshold table. Rows are evaluated
// top to bottom with a strict > comparison; the first match wins. The final
// row uses -Inf so it always matches.
type scoreTier struct {
	Threshold float64
	Points    int
	Narrative string
}

var marketCapTiers = []scoreTier{
	{1e9, 25, "Large market cap suggests an established asset with deep liquidity"},
	{1e8, 15, "Mid-tier market cap with established presence but room to grow"},
	{math.Inf(-1), 5, "Small market cap carries elevated volatility and liquidity risk"},
}

var volumeRatioTiers = []scoreTier{
	{0.10, 20, "Very healthy trading volume relative to market cap"},
	{0.03, 10, "Adequate trading volume relative to market cap"},
	{math.Inf(-1), 3, "Thin trading volume may make large positions hard to exit"},
}

var developmentTiers = []scoreTier{
	{50, 20, "Very active development with frequent recent commits"},
	{10, 10, "Moderate development activity over the last four weeks"},
	{math.Inf(-1), 2, "Little recent development activity"},
}

var communityTiers = []scoreTier{
	{70, 15, "Strong and engaged community"},
	{30, 8, "Moderate community engagement"},
	{math.Inf(-1), 3, "Weak community engagement"},
}

var athDistanceTiers = []scoreTier{
	{-20, 15, "Price is holding close to its all-time high"},
	{-50, 10, "Price is moderately below its all-time high"},
	{-80, 5, "Price is deeply discounted from its all-time high"},
	{math.Inf(-1), 2, "Price has collapsed far below its all-time high"},
}

// matchTier returns the first tier whose threshold the value strictly exceeds.
func matchTier(tiers []scoreTier, value float64) scoreTier {
	for _, t := range tiers {
		if value > t.Threshold {
			return t
		}
	}
	// Unreachable: the last row's -Inf threshold matches any finite value.
	return tiers[len(tiers)-1]
}
