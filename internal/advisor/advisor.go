// Package advisor synthesizes a fundamental assessment and a technical trend
// into ordered, human-readable suggestions.
package advisor

import "CoinSentry/internal/model"

// Disclaimer is appended to every recommendation, kept apart from the
// suggestion list so consumers can render it separately.
const Disclaimer = "This assessment is generated automatically and is not financial advice. Cryptocurrency markets are highly volatile; always do your own research."

const (
	suggestLongTerm   = "Strong fundamentals support a long-term accumulation strategy."
	suggestMediumTerm = "Mixed fundamentals suggest a cautious medium-term position with strict risk management."
	suggestHighRisk   = "Weak fundamentals make this a high-risk asset suitable only for experienced traders."

	suggestBullishEntry = "The short-term trend is bullish, which may offer a favorable entry point."
	suggestBearishEntry = "The short-term trend is bearish; consider waiting for a better entry point."

	suggestCapital = "Never invest more than you can afford to lose."
)

// Synthesize combines both analyses into an ordered suggestion list:
// investment horizon first, entry timing second, then the fixed
// capital-preservation reminder. It is pure and never fails.
func Synthesize(fund model.FundamentalAssessment, trend model.Trend) model.Recommendation {
	suggestions := make([]string, 0, 3)

	switch {
	case fund.TotalScore >= 70:
		suggestions = append(suggestions, suggestLongTerm)
	case fund.TotalScore >= 40:
		suggestions = append(suggestions, suggestMediumTerm)
	default:
		suggestions = append(suggestions, suggestHighRisk)
	}

	if trend == model.TrendBullish {
		suggestions = append(suggestions, suggestBullishEntry)
	} else {
		suggestions = append(suggestions, suggestBearishEntry)
	}

	suggestions = append(suggestions, suggestCapital)

	return model.Recommendation{
		Suggestions: suggestions,
		Disclaimer:  Disclaimer,
	}
}
