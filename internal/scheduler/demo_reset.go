// Package scheduler runs the periodic demo-mode database reset.
package scheduler

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/mhorky/librarium/internal/database"
	"github.com/mhorky/librarium/internal/demo"
)

// DemoResetScheduler periodically reseeds the catalog with sample data.
type DemoResetScheduler struct {
	db       *database.Database
	schedule string

	cron      *cron.Cron
	mu        sync.Mutex
	isRunning bool
}

// NewDemoResetScheduler creates a scheduler for the given cron spec.
// Descriptors like "@every 15m" are accepted alongside standard specs.
func NewDemoResetScheduler(db *database.Database, schedule string) *DemoResetScheduler {
	return &DemoResetScheduler{
		db:       db,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start begins the reset schedule.
func (s *DemoResetScheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := demo.Seed(s.db); err != nil {
			log.Printf("Demo reset failed: %v", err)
			return
		}
		log.Printf("Demo database reseeded")
	})
	if err != nil {
		return fmt.Errorf("invalid demo reset schedule '%s': %w", s.schedule, err)
	}

	s.cron.Start()
	s.isRunning = true
	log.Printf("Demo reset scheduler: started with schedule '%s'", s.schedule)

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running reset to finish.
func (s *DemoResetScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.isRunning = false

	log.Printf("Demo reset scheduler: stopped")
}
