package fundamental

import "CoinSentry/internal/model"

// Each scoring function evaluates one dimension. The boolean reports whether
// the dimension fired; a dimension whose required inputs are absent is
// skipped entirely rather than scored from a default.

func scoreMarketCap(s *model.MarketSnapshot) (model.FundamentalFactor, bool) {
	if s.MarketCap == nil {
		return model.FundamentalFactor{}, false
	}
	t := matchTier(marketCapTiers, *s.MarketCap)
	return model.FundamentalFactor{Category: model.FactorMarketCap, Points: t.Points, Narrative: t.Narrative}, true
}

func scoreVolumeRatio(s *model.MarketSnapshot) (model.FundamentalFactor, bool) {
	if s.Volume24h == nil || s.MarketCap == nil || *s.MarketCap == 0 {
		return model.FundamentalFactor{}, false
	}
	ratio := *s.Volume24h / *s.MarketCap
	t := matchTier(volumeRatioTiers, ratio)
	return model.FundamentalFactor{Category: model.FactorVolumeRatio, Points: t.Points, Narrative: t.Narrative}, true
}

// scoreDevelopment always fires: an absent commit count defaults to 0.
func scoreDevelopment(s *model.MarketSnapshot) model.FundamentalFactor {
	t := matchTier(developmentTiers, float64(s.DevCommits4w))
	return model.FundamentalFactor{Category: model.FactorDevelopment, Points: t.Points, Narrative: t.Narrative}
}

func scoreCommunity(s *model.MarketSnapshot) (model.FundamentalFactor, bool) {
	if s.CommunityScore == nil {
		return model.FundamentalFactor{}, false
	}
	t := matchTier(communityTiers, *s.CommunityScore)
	return model.FundamentalFactor{Category: model.FactorCommunity, Points: t.Points, Narrative: t.Narrative}, true
}

// scoreATHDistance always fires: an absent ATH distance defaults to 0,
// which lands in the near-ATH tier.
func scoreATHDistance(s *model.MarketSnapshot) model.FundamentalFactor {
	t := matchTier(athDistanceTiers, s.ATHChangePct)
	return model.FundamentalFactor{Category: model.FactorATHDistance, Points: t.Points, Narrative: t.Narrative}
}
