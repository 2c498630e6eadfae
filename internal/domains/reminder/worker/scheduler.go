package worker

import (
	"context"
	"fmt"
	"livecity/config"
	"livecity/internal/domains/reminder/service"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultInterval = 24 * time.Hour

// Scheduler drives the reminder job on a fixed cadence inside the host process.
type Scheduler struct {
	reminder service.Reminder
	interval time.Duration
}

func New(cfg *config.Config, reminder service.Reminder) *Scheduler {
	interval := time.Duration(cfg.Reminder.IntervalHours) * time.Hour
	if interval <= 0 {
		interval = defaultInterval
	}

	return NewWithInterval(reminder, interval)
}

func NewWithInterval(reminder service.Reminder, interval time.Duration) *Scheduler {
	return &Scheduler{
		reminder: reminder,
		interval: interval,
	}
}

// Start runs the job once immediately and then every interval until ctx is done.
// It always returns nil so it can sit in an errgroup next to the HTTP server.
func (s *Scheduler) Start(ctx context.Context) error {
	log.Info().Dur("interval", s.interval).Msg("reminder scheduler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("reminder scheduler stopped")

			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Err(fmt.Errorf("%v", r)).Msg("reminder run panicked")
		}
	}()

	if ctx.Err() != nil {
		return
	}

	if _, err := s.reminder.Run(ctx); err != nil {
		log.Error().Err(err).Msg("reminder run failed, retrying next tick")
	}
}
