package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers the daily fan-out on a cron schedule evaluated in UTC.
type Scheduler struct {
	cron    *cron.Cron
	entryID cron.EntryID
}

// NewScheduler registers job under spec, a standard five-field cron expression.
func NewScheduler(spec string, timeout time.Duration, job func(ctx context.Context) (int, error)) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))
	id, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if _, err := job(ctx); err != nil {
			slog.ErrorContext(ctx, "scheduled reminder run failed", "error", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	return &Scheduler{cron: c, entryID: id}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("reminder scheduler started", "next", s.Next())
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next is the next activation time, zero before Start.
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}
