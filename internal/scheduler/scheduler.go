package scheduler

import (
	"context"
	"log"

	"CreativeSentinel/internal/ingest"
	"CreativeSentinel/internal/recorder"
	"CreativeSentinel/internal/rollup"

	"github.com/robfig/cron/v3"
)

// Scheduler re-runs report ingestion for the configured URLs on a cron
// schedule, so the rollup keeps filling without manual analyze calls.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *ingest.Analyzer
	Store    *rollup.Store
	Recorder recorder.Recorder
	Ctx      context.Context

	ClicksURL      string
	ConversionsURL string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, a *ingest.Analyzer, st *rollup.Store, rec recorder.Recorder, clicksURL, conversionsURL string) *Scheduler {
	return &Scheduler{
		Cron:           cron.New(cron.WithSeconds()),
		Analyzer:       a,
		Store:          st,
		Recorder:       rec,
		Ctx:            ctx,
		ClicksURL:      clicksURL,
		ConversionsURL: conversionsURL,
	}
}

// Register adds the ingest task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	_, err := s.Cron.AddFunc(spec, s.RunIngestNow)
	return err
}

// Start begins cron scheduling.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop halts cron scheduling.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunIngestNow executes one full ingest cycle immediately.
func (s *Scheduler) RunIngestNow() {
	log.Println("[INFO] scheduled ingest starting")

	res, err := s.Analyzer.Analyze(s.Ctx, s.ClicksURL, s.ConversionsURL)
	if err != nil {
		log.Printf("[ERROR] scheduled ingest: %v", err)
		return
	}
	if err := s.Store.Upsert(res.Date, res.Records); err != nil {
		log.Printf("[ERROR] scheduled ingest upsert: %v", err)
		return
	}
	if err := s.Recorder.RecordIngest(&recorder.IngestEvent{
		Date:           res.Date,
		Records:        len(res.Records),
		ClicksURL:      s.ClicksURL,
		ConversionsURL: s.ConversionsURL,
		Source:         "cron",
	}); err != nil {
		log.Printf("[WARN] record ingest event: %v", err)
	}

	log.Printf("[INFO] scheduled ingest done: date=%s records=%d", res.Date, len(res.Records))
}
