package scheduler

import (
	"context"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/robfig/cron/v3"
)

// Job represents a scheduled job
type Job interface {
	Run(ctx context.Context) error
	Name() string
}

// Scheduler runs background jobs on cron schedules.
// A job still running when its next tick fires is skipped for that tick.
type Scheduler struct {
	cron         *cron.Cron
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	jobTimeout   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new scheduler. jobTimeout bounds each run; zero means no bound.
func New(logger coreport.Logger, timeProvider coreport.TimeProvider, jobTimeout time.Duration) *Scheduler {
	cronLogger := cronLogAdapter{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		logger:       logger,
		timeProvider: timeProvider,
		jobTimeout:   jobTimeout,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// AddJob registers job on a cron schedule.
// Schedule examples:
//   - "0 */5 * * * *"  every 5 minutes
//   - "@hourly"
//   - "@every 30s"
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunNow(job); err != nil {
			s.logger.Error("Job failed", map[string]any{
				"job":   job.Name(),
				"error": err.Error(),
			})
		}
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", schedule, job.Name(), err)
	}

	s.logger.Info("Job registered", map[string]any{
		"job":      job.Name(),
		"schedule": schedule,
	})
	return nil
}

// RunNow executes a job immediately, outside its schedule
func (s *Scheduler) RunNow(job Job) error {
	ctx := s.ctx
	if s.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = s.timeProvider.WithTimeout(ctx, s.jobTimeout)
		defer cancel()
	}

	start := s.timeProvider.Now()
	s.logger.Debug("Running job", map[string]any{"job": job.Name()})

	if err := job.Run(ctx); err != nil {
		return err
	}

	s.logger.Debug("Job completed", map[string]any{
		"job":      job.Name(),
		"duration": s.timeProvider.Since(start).String(),
	})
	return nil
}

// Start starts the scheduler in its own goroutine
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", map[string]any{"jobs": len(s.cron.Entries())})
}

// Stop cancels running jobs and waits for them to return, or for ctx to expire
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.logger.Info("Scheduler stopped", nil)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogAdapter routes cron's own logging through the core logger
type cronLogAdapter struct {
	logger coreport.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug("cron: "+msg, keyValueFields(keysAndValues))
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := keyValueFields(keysAndValues)
	fields["error"] = err.Error()
	a.logger.Error("cron: "+msg, fields)
}

func keyValueFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2+1)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
