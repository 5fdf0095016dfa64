package cron

import (
	"log"

	"futsim-api/packages/core/services"

	"github.com/robfig/cron/v3"
)

// DefaultPurgeSchedule runs the purge every day at 03:00.
const DefaultPurgeSchedule = "0 0 3 * * *"

type Scheduler struct {
	cron         *cron.Cron
	schedule     string
	purgeService *services.PurgeService
}

func NewScheduler(purgeService *services.PurgeService, schedule string) *Scheduler {
	// Create cron with seconds precision and logging
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	if schedule == "" {
		schedule = DefaultPurgeSchedule
	}

	return &Scheduler{
		cron:         c,
		schedule:     schedule,
		purgeService: purgeService,
	}
}

// Start registers the purge job and starts the scheduler
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	_, err := s.cron.AddFunc(s.schedule, s.runPurge)
	if err != nil {
		log.Printf("Error scheduling purge job %q: %v", s.schedule, err)
		return err
	}

	s.cron.Start()
	log.Printf("Cron scheduler started (purge: %s)", s.schedule)

	return nil
}

// Stop gracefully shuts down the scheduler
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	<-s.cron.Stop().Done()
	log.Println("Cron scheduler stopped")
}

// runPurge hard-deletes rows soft-deleted before the retention window
func (s *Scheduler) runPurge() {
	log.Println("Running purge job...")

	count, err := s.purgeService.CountPurgeable()
	if err != nil {
		log.Printf("Error counting purgeable rows: %v", err)
		return
	}

	if count == 0 {
		log.Println("Nothing to purge")
		return
	}

	log.Printf("Found %d rows to purge", count)

	removed, err := s.purgeService.PurgeDeleted()
	if err != nil {
		log.Printf("Error during purge: %v", err)
		return
	}

	log.Printf("Purge job completed, %d rows removed", removed)
}

// RunNow manually triggers the purge job
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering purge job...")
	s.runPurge()
}
