// Package fundamental scores an asset's market fundamentals into a 0-100
// total with per-dimension narratives and a coarse risk tier.
package fundamental

import "CoinSentry/internal/model"

// riskTiers maps minimum total scores to risk tiers, highest first.
var riskTiers = []struct {
	MinScore int
	Tier     model.RiskTier
}{
	{80, model.RiskLow},
	{60, model.RiskMedium},
	{40, model.RiskHigh},
}

func mapRiskTier(totalScore int) model.RiskTier {
	for _, t := range riskTiers {
		if totalScore >= t.MinScore {
			return t.Tier
		}
	}
	return model.RiskVeryHigh
}

// Score evaluates all five dimensions in fixed order (market cap, volume
// ratio, development, community, ATH distance) and sums their points.
// It never fails: dimensions with absent inputs are skipped, so an empty
// snapshot still yields an assessment built from the defaulted dimensions.
func Score(snap *model.MarketSnapshot) model.FundamentalAssessment {
	factors := make([]model.FundamentalFactor, 0, 5)
	total := 0

	if f, ok := scoreMarketCap(snap); ok {
		factors = append(factors, f)
		total += f.Points
	}
	if f, ok := scoreVolumeRatio(snap); ok {
		factors = append(factors, f)
		total += f.Points
	}

	dev := scoreDevelopment(snap)
	factors = append(factors, dev)
	total += dev.Points

	if f, ok := scoreCommunity(snap); ok {
		factors = append(factors, f)
		total += f.Points
	}

	ath := scoreATHDistance(snap)
	factors = append(factors, ath)
	total += ath.Points

	tier := mapRiskTier(total)
	return model.FundamentalAssessment{
		TotalScore: total,
		RiskTier:   tier,
		RiskColor:  tier.Color(),
		Factors:    factors,
	}
}
