package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRolloverTimeout bounds a single rollover run.
const DefaultRolloverTimeout = 30 * time.Second

// SchedulerService runs the daily rollover on a cron clock in the journal's
// zone. A panicking job is recovered and logged instead of killing the loop.
type SchedulerService struct {
	cron    *cron.Cron
	logger  *slog.Logger
	timeout time.Duration
}

func NewSchedulerService(loc *time.Location, logger *slog.Logger) *SchedulerService {
	logger = componentLogger(logger, "scheduler")
	cl := cronLogger{logger}
	return &SchedulerService{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl)),
		),
		logger:  logger,
		timeout: DefaultRolloverTimeout,
	}
}

// ScheduleRollover creates each new day (and its journal) daily at the HH:MM
// clock time at.
func (s *SchedulerService) ScheduleRollover(at string, store *DayRecordStore) (cron.EntryID, error) {
	id, err := s.ScheduleDaily(at, func() { s.runRollover(store.Rollover) })
	if err != nil {
		return 0, fmt.Errorf("schedule rollover: %w", err)
	}
	return id, nil
}

// ScheduleDaily registers a daily job at the given HH:MM time string.
func (s *SchedulerService) ScheduleDaily(at string, job func()) (cron.EntryID, error) {
	spec, err := BuildDailySpec(at)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, job)
}

func (s *SchedulerService) runRollover(rollover func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	if err := rollover(ctx); err != nil {
		s.logger.Error("rollover failed", "error", err)
		return
	}
	s.logger.Debug("rollover finished", "took", time.Since(started))
}

// Next returns the next activation time of a registered job, or zero before
// Start.
func (s *SchedulerService) Next(id cron.EntryID) time.Time {
	return s.cron.Entry(id).Next
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop halts the clock and waits for a running job to finish.
func (s *SchedulerService) Stop() {
	<-s.cron.Stop().Done()
}

// BuildDailySpec converts HH:MM (hour may be one digit) into a
// seconds-enabled cron spec.
func BuildDailySpec(at string) (string, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return "", fmt.Errorf("invalid time %q, expected HH:MM", at)
	}
	// second minute hour dom month dow
	return fmt.Sprintf("0 %d %d * * *", t.Minute(), t.Hour()), nil
}

// cronLogger sends cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
