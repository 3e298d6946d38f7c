package jobs

import (
	"context"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PendingOrderRenotifyJob periodically re-broadcasts immediate orders that
// have been waiting in pending provider status for longer than the stale
// window. A push notification can be missed; the sweep makes sure an order
// gets in front of the sector's providers again.
type PendingOrderRenotifyJob struct {
	handler    commands.RenotifyPendingOrdersCommandHandler
	staleAfter time.Duration
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingOrderRenotifyJob creates a job for the stale-order sweep.
// The schedule is a six-field cron expression with a seconds column.
func NewPendingOrderRenotifyJob(
	handler commands.RenotifyPendingOrdersCommandHandler,
	staleAfter time.Duration,
	schedule string,
	logger *slog.Logger,
) *PendingOrderRenotifyJob {
	return &PendingOrderRenotifyJob{
		handler:    handler,
		staleAfter: staleAfter,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_order_renotify_job"),
	}
}

// Start begins the sweep on its configured schedule.
func (j *PendingOrderRenotifyJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRenotifyPendingOrdersCommand(j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order renotify job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Pending order renotify job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order renotify job started",
		"schedule", j.schedule, "stale_after", j.staleAfter.String())
	return nil
}

// Stop stops the sweep.
func (j *PendingOrderRenotifyJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order renotify job stopped")
}
