package keepalive

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler issues a trivial daily query so the hosted database project is
// not paused for inactivity on low-traffic deployments.
type Scheduler struct {
	db   *sql.DB
	cron *cron.Cron
}

func NewScheduler(db *sql.DB) *Scheduler {
	return &Scheduler{db: db}
}

// Start initializes the cron task (daily at 6:00 AM).
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 6 * * *", func() {
		s.ping()
	})
	if err != nil {
		log.Printf("Failed to create keepalive cron job: %v", err)
		return
	}

	log.Println("Keepalive scheduler started (daily store ping at 6:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler. Safe to call if Start never ran.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) ping() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var one int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		log.Printf("Keepalive ping failed: %v", err)
		return
	}
	log.Println("Keepalive ping completed at:", time.Now().Format(time.RFC1123))
}
