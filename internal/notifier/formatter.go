package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"CoinSentry/internal/model"
)

var tierEmoji = map[model.RiskTier]string{
	model.RiskLow:      "🟢",
	model.RiskMedium:   "🟡",
	model.RiskHigh:     "🟠",
	model.RiskVeryHigh: "🔴",
}

// FormatAssessmentReport renders one asset's assessment as a Telegram HTML message.
func FormatAssessmentReport(a *model.AssetAssessment) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s <b>%s</b> | score %d (%s)\n",
		tierEmoji[a.Fundamental.RiskTier], a.CoinID, a.Fundamental.TotalScore, a.Fundamental.RiskTier))

	if snap := a.Snapshot; snap != nil {
		if snap.MarketCap != nil {
			b.WriteString(fmt.Sprintf("Market cap: $%s\n", humanize.CommafWithDigits(*snap.MarketCap, 0)))
		}
		if snap.Volume24h != nil {
			b.WriteString(fmt.Sprintf("24h volume: $%s\n", humanize.CommafWithDigits(*snap.Volume24h, 0)))
		}
	}

	b.WriteString("\n<b>Fundamentals:</b>\n")
	for _, f := range a.Fundamental.Factors {
		b.WriteString(fmt.Sprintf("  +%d %s\n", f.Points, f.Narrative))
	}

	if t := a.Technical; t != nil {
		b.WriteString("\n<b>Technicals:</b>\n")
		b.WriteString(fmt.Sprintf("  Trend: %s / %s\n", t.RecentTrend, t.LongTrend))
		b.WriteString(fmt.Sprintf("  Volatility: %.1f%% (%s)\n", t.VolatilityPct, t.VolatilityTier))
		b.WriteString(fmt.Sprintf("  Support %.4f | Resistance %.4f\n", t.Support, t.Resistance))
	} else {
		b.WriteString("\nTechnicals: unavailable (no usable price history)\n")
	}

	b.WriteString("\n<b>Suggestions:</b>\n")
	for _, s := range a.Recommendation.Suggestions {
		b.WriteString(fmt.Sprintf("  • %s\n", s))
	}
	b.WriteString(fmt.Sprintf("\n<i>%s</i>\n", a.Recommendation.Disclaimer))

	return b.String()
}

// FormatDigestHeader renders the heading of a scheduled watchlist digest.
func FormatDigestHeader(coins int) string {
	return fmt.Sprintf("📊 <b>CoinSentry digest</b> | %s | %d coins\n\n",
		time.Now().Format("2006-01-02"), coins)
}

// FormatRiskAlert renders a standalone alert for a VERY_HIGH risk asset.
func FormatRiskAlert(a *model.AssetAssessment) string {
	return fmt.Sprintf("🔴 <b>Risk alert</b>: %s scored %d (%s)\n%s\n",
		a.CoinID, a.Fundamental.TotalScore, a.Fundamental.RiskTier,
		a.Recommendation.Suggestions[0])
}
