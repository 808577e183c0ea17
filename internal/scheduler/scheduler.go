package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"SKCCTracker/internal/roster"
)

// Scheduler refreshes the award rosters on a cron cadence. SKCC publishes
// roster updates weekly, so the default schedule fires Sunday morning.
type Scheduler struct {
	Cron  *cron.Cron
	Store *roster.Store
}

// NewScheduler creates a new Scheduler.
func NewScheduler(store *roster.Store) *Scheduler {
	return &Scheduler{
		Cron:  cron.New(cron.WithSeconds()),
		Store: store,
	}
}

// Register schedules the periodic roster refresh.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register roster refresh: %w", err)
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

// RunNow refreshes all rosters immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow(force bool) {
	for tier, err := range s.Store.DownloadAll(force) {
		if err != nil {
			log.Printf("[WARN] refresh %s roster: %v", tier, err)
		}
	}
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running scheduled roster refresh")
	s.RunNow(false)
}
