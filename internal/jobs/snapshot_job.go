package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"agvsim/internal/core/application/usecases/commands"
)

// SnapshotJob periodically persists the live state, bounding how much
// simulation progress a crash can lose.
type SnapshotJob struct {
	handler  commands.SaveStateCommandHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSnapshotJob creates a new job persisting the state every interval.
func NewSnapshotJob(
	handler commands.SaveStateCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *SnapshotJob {
	return &SnapshotJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "snapshot_job"),
	}
}

// Start begins the snapshot job.
func (j *SnapshotJob) Start() error {
	spec := fmt.Sprintf("@every %s", j.interval)
	_, err := j.cron.AddFunc(spec, func() {
		ctx := context.Background()
		cmd := commands.NewSaveStateCommand()

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Snapshot job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started", "interval", j.interval.String())
	return nil
}

// Stop stops the snapshot job.
func (j *SnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
