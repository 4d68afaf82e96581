package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAssessment(_ *AssessmentRecord) error { return nil }
func (n *NoopRecorder) RecentAssessments(_ string, _ int) ([]AssessmentRecord, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
