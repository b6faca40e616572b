package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"agvsim/internal/core/application/usecases/commands"
)

// TickJob advances the simulation once per second. It is disabled by
// default; ticks are normally driven by the external caller, and the job
// only exists for self-running demos (AUTO_TICK=true).
type TickJob struct {
	handler commands.TickCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTickJob creates a new job advancing the simulation every second.
func NewTickJob(handler commands.TickCommandHandler, logger *slog.Logger) *TickJob {
	return &TickJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "tick_job"),
	}
}

// Start begins the tick job.
func (j *TickJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewTickCommand()

		summary, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			// A tick failure means a state invariant broke; it must stay
			// visible in the logs, not be papered over by the next tick.
			j.logger.ErrorContext(ctx, "Tick job failed", "error", handleErr)
			return
		}

		if len(summary.Moves) > 0 || len(summary.CompletedOrders) > 0 {
			j.logger.InfoContext(ctx, "Tick advanced",
				"seq", summary.Seq,
				"moved", len(summary.Moves),
				"completed", len(summary.CompletedOrders))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tick job started (running every second)")
	return nil
}

// Stop stops the tick job.
func (j *TickJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tick job stopped")
}
