package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"CoinSentry/internal/collector"
	"CoinSentry/internal/model"
	"CoinSentry/internal/notifier"
	"CoinSentry/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs periodic watchlist assessments.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Watchlist []string
	Notifier  *notifier.TelegramNotifier // nil disables notifications
	Recorder  recorder.Recorder
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, watchlist []string, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Watchlist: watchlist,
		Notifier:  tn,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the periodic assessment task.
func (s *Scheduler) RegisterAll(assessCron string) error {
	if _, err := s.Cron.AddFunc(assessCron, s.assessTask); err != nil {
		return fmt.Errorf("register assess task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAssessmentNow executes the assessment task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunAssessmentNow() {
	s.assessTask()
}

func (s *Scheduler) assessTask() {
	log.Printf("[INFO] running watchlist assessment (%d coins)", len(s.Watchlist))

	var digest strings.Builder
	digest.WriteString(notifier.FormatDigestHeader(len(s.Watchlist)))

	for _, coinID := range s.Watchlist {
		a, err := s.Collector.Assess(coinID)
		if err != nil {
			log.Printf("[ERROR] assess %s: %v", coinID, err)
			digest.WriteString(fmt.Sprintf("⚠️ %s: assessment failed\n", coinID))
			continue
		}

		if err := s.Recorder.RecordAssessment(recorder.NewAssessmentRecord(a)); err != nil {
			log.Printf("[ERROR] record assessment for %s: %v", coinID, err)
		}

		tech := "-"
		if a.Technical != nil {
			tech = fmt.Sprintf("%s/%s", a.Technical.RecentTrend, a.Technical.LongTrend)
		}
		digest.WriteString(fmt.Sprintf("%s: %d (%s) %s\n",
			coinID, a.Fundamental.TotalScore, a.Fundamental.RiskTier, tech))

		if a.Fundamental.RiskTier == model.RiskVeryHigh && s.Notifier != nil {
			if err := s.Notifier.DeliverRiskAlert(s.Ctx, a); err != nil {
				log.Printf("[ERROR] send risk alert for %s: %v", coinID, err)
			}
		}
	}

	s.trySend(digest.String())
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Deliver(s.Ctx, text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
