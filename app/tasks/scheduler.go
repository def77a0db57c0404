package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prepdesk/bankdigest/app/cfg"
	"github.com/prepdesk/bankdigest/app/report"
)

// Runner is the report generation entry point the scheduler fires.
type Runner interface {
	Run(ctx context.Context, force bool) (*report.RunResult, error)
}

// Scheduler fires one generation run per day at the configured
// wall-clock time in the configured timezone. Missed fire times (the
// process was down) are not replayed; the next run covers them.
type Scheduler struct {
	runner   Runner
	hour     int
	minute   int
	location *time.Location
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewScheduler(runner Runner) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := cfg.Get()

	return &Scheduler{
		runner:   runner,
		hour:     cfg.ScheduleHour,
		minute:   cfg.ScheduleMinute,
		location: cfg.Location(),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			next := nextRun(time.Now().In(s.location), s.hour, s.minute)
			slog.Info("Next scheduled run", "at", next.Format(time.RFC3339))

			timer := time.NewTimer(time.Until(next))

			select {
			case <-s.ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
				s.execute()
			}
		}
	}()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Scheduler) execute() {
	runCtx, cancel := context.WithTimeout(s.ctx, 10*time.Minute)
	defer cancel()

	result, err := s.runner.Run(runCtx, false)
	if err != nil {
		slog.Error("Scheduled run failed", "error", err)
		return
	}

	slog.Info("Scheduled run finished", "status", result.Status, "date", result.Date)
}

// nextRun returns the first hh:mm instant in now's location strictly
// after now. time.Date normalizes the day rollover, including DST
// transitions.
func nextRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
