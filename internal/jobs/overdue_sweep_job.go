package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueSweepJob periodically catches the stored status of invoices up
// with their derived status. An invoice past its due date reads as Overdue
// immediately; this job makes the stored row agree.
type OverdueSweepJob struct {
	handler commands.SweepOverdueInvoicesCommandHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueSweepJob creates a job that runs the overdue sweep on the given
// cron schedule.
func NewOverdueSweepJob(
	handler commands.SweepOverdueInvoicesCommandHandler,
	spec string,
	logger *slog.Logger,
) *OverdueSweepJob {
	return &OverdueSweepJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_sweep_job"),
	}
}

// Start schedules the sweep. Failures are logged and retried on the next
// tick; a missed sweep is harmless because reads derive Overdue live.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewSweepOverdueInvoicesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Overdue sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started", "spec", j.spec)
	return nil
}

// Stop stops the overdue sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}
