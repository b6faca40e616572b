package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"agvsim/internal/core/application/usecases/commands"
)

// OrderAssignmentJob retries scheduling of NEW orders every second, so an
// order that found no robot at creation time is picked up as soon as a
// robot completes its delivery.
type OrderAssignmentJob struct {
	handler commands.AssignOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderAssignmentJob creates a new job for the batch assignment pass.
func NewOrderAssignmentJob(handler commands.AssignOrdersCommandHandler, logger *slog.Logger) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_assignment_job"),
	}
}

// Start begins the assignment job to run every second.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignOrdersCommand()

		assignments, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Order assignment job failed", "error", handleErr)
			return
		}

		for _, a := range assignments {
			j.logger.InfoContext(ctx, "Order assigned",
				"order", a.Order, "robot", a.Robot, "route_len", len(a.Route))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every second)")
	return nil
}

// Stop stops the assignment job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}
