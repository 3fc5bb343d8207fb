package bootstrap

import (
	"context"
	"log/slog"

	"booking-calculator/internal/pkg/config"
	"booking-calculator/internal/scheduler"
	"booking-calculator/internal/usecase/commands"
	"booking-calculator/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(cfg config.Config, logger *slog.Logger, provider shared.BookedRangeProvider, extensions commands.ExtensionCommands) (*scheduler.Scheduler, error) {
	return scheduler.New(cfg.Snapshot.SweepSpec, logger,
		scheduler.SweepJob{Name: "booked_range_snapshots", Sweep: provider.Sweep},
		scheduler.SweepJob{Name: "extension_quote_memos", Sweep: extensions.SweepMemos},
	)
}

func startScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			logger.Info("Snapshot sweeper started", "jobs", s.Entries())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
}
