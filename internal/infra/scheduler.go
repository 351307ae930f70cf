package infra

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"stockledger/internal/service"
)

// Scheduler runs the periodic ledger audit.
type Scheduler struct {
	cron     *cron.Cron
	audit    *service.AuditService
	cronSpec string
}

// NewScheduler creates a new scheduler. cronSpec defaults to hourly.
func NewScheduler(audit *service.AuditService, cronSpec string) *Scheduler {
	if cronSpec == "" {
		cronSpec = "0 * * * *"
	}
	return &Scheduler{
		cron:     cron.New(),
		audit:    audit,
		cronSpec: cronSpec,
	}
}

// Start registers the audit job and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cronSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		log.Println("[CRON] Ledger audit triggered")
		if err := s.audit.Run(ctx); err != nil {
			log.Printf("ERROR: Scheduled ledger audit failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[OK] Audit scheduler started (spec: %s)", s.cronSpec)
	return nil
}

// RunNow triggers a single audit pass outside the schedule.
func (s *Scheduler) RunNow(ctx context.Context) error {
	return s.audit.Run(ctx)
}

// Stop stops the scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[OK] Audit scheduler stopped")
}
