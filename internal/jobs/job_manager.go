package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"agvsim/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderAssignmentJob *OrderAssignmentJob
	snapshotJob        *SnapshotJob
	tickJob            *TickJob
}

// NewJobManager creates a job manager with all required jobs. tickHandler
// is only wired into a running job when autoTick is true.
func NewJobManager(
	assignOrdersHandler commands.AssignOrdersCommandHandler,
	saveStateHandler commands.SaveStateCommandHandler,
	tickHandler commands.TickCommandHandler,
	snapshotInterval time.Duration,
	autoTick bool,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{
		orderAssignmentJob: NewOrderAssignmentJob(assignOrdersHandler, logger),
		snapshotJob:        NewSnapshotJob(saveStateHandler, snapshotInterval, logger),
	}
	if autoTick {
		jm.tickJob = NewTickJob(tickHandler, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start order assignment job: %w", err)
	}

	if err := jm.snapshotJob.Start(); err != nil {
		jm.orderAssignmentJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	if jm.tickJob != nil {
		if err := jm.tickJob.Start(); err != nil {
			jm.snapshotJob.Stop()
			jm.orderAssignmentJob.Stop()
			return fmt.Errorf("failed to start tick job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.tickJob != nil {
		jm.tickJob.Stop()
	}
	jm.snapshotJob.Stop()
	jm.orderAssignmentJob.Stop()
}
