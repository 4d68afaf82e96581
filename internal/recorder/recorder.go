package recorder

import "CoinSentry/internal/model"

// AssessmentRecord is the persisted summary of one completed analysis run.
type AssessmentRecord struct {
	Timestamp      int64
	CoinID         string
	TotalScore     int
	RiskTier       string
	HasTechnical   bool
	RecentTrend    string
	LongTrend      string
	VolatilityPct  float64
	VolatilityTier string
	Support        float64
	Resistance     float64
}

// NewAssessmentRecord flattens an AssetAssessment for persistence.
func NewAssessmentRecord(a *model.AssetAssessment) *AssessmentRecord {
	rec := &AssessmentRecord{
		Timestamp:  a.GeneratedAt.Unix(),
		CoinID:     a.CoinID,
		TotalScore: a.Fundamental.TotalScore,
		RiskTier:   string(a.Fundamental.RiskTier),
	}
	if a.Technical != nil {
		rec.HasTechnical = true
		rec.RecentTrend = string(a.Technical.RecentTrend)
		rec.LongTrend = string(a.Technical.LongTrend)
		rec.VolatilityPct = a.Technical.VolatilityPct
		rec.VolatilityTier = string(a.Technical.VolatilityTier)
		rec.Support = a.Technical.Support
		rec.Resistance = a.Technical.Resistance
	}
	return rec
}

// Recorder persists assessment history for the dashboard.
type Recorder interface {
	RecordAssessment(rec *AssessmentRecord) error
	RecentAssessments(coinID string, limit int) ([]AssessmentRecord, error)
	Close() error
}
