package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SweepJob removes expired in-memory state and reports how many entries it
// dropped.
type SweepJob struct {
	Name  string
	Sweep func() int
}

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// New registers every job on the same spec. Both standard five-field
// expressions and descriptors such as "@every 5m" are accepted.
func New(spec string, logger *slog.Logger, jobs ...SweepJob) (*Scheduler, error) {
	cronLogger := slogAdapter{logger: logger}
	c := cron.New(cron.WithLogger(cronLogger), cron.WithChain(
		cron.SkipIfStillRunning(cronLogger),
		cron.Recover(cronLogger),
	))

	s := &Scheduler{cron: c, logger: logger}
	for _, job := range jobs {
		if _, err := c.AddFunc(spec, s.run(job)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Scheduler) run(job SweepJob) func() {
	return func() {
		removed := job.Sweep()
		if removed > 0 {
			s.logger.Debug("Sweep finished", slog.String("job", job.Name), slog.Int("removed", removed))
		}
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Entries is the number of registered jobs.
func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Debug("cron: "+msg, keysAndValues...)
}

func (a slogAdapter) Error(err error, msg string, keysAndValues ...any) {
	a.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
