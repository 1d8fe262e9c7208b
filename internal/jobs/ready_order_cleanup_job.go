package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/biruk-abayneh/Restaurant-app/internal/core/application/usecases/commands"
	"github.com/biruk-abayneh/Restaurant-app/internal/core/domain/model/order"
	"github.com/biruk-abayneh/Restaurant-app/internal/pkg/errs"
)

// ReadyOrderSource lists ready orders last touched before a cutoff.
// Both store backends implement it.
type ReadyOrderSource interface {
	GetReadyBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

// OrderRemover deletes an order record and broadcasts the deletion.
// Satisfied by the order flow.
type OrderRemover interface {
	Remove(ctx context.Context, cmd commands.RemoveOrderCommand) (order.Snapshot, error)
}

// ReadyOrderCleanupJob removes ready orders that have sat past the retention
// window. Removal goes through the order flow so displays see the deletion
// and the table frees up.
type ReadyOrderCleanupJob struct {
	source    ReadyOrderSource
	remover   OrderRemover
	retention time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewReadyOrderCleanupJob creates the cleanup job. The schedule is a
// seconds-capable cron expression.
func NewReadyOrderCleanupJob(
	source ReadyOrderSource,
	remover OrderRemover,
	retention time.Duration,
	schedule string,
	logger *slog.Logger,
) *ReadyOrderCleanupJob {
	return &ReadyOrderCleanupJob{
		source:    source,
		remover:   remover,
		retention: retention,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "ready_order_cleanup_job"),
	}
}

// Start schedules the cleanup run.
func (j *ReadyOrderCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Ready order cleanup job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run performs a single cleanup sweep. Exported so the job can be triggered
// outside the schedule.
func (j *ReadyOrderCleanupJob) Run(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-j.retention)

	expired, err := j.source.GetReadyBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Ready order cleanup sweep failed", "error", err)
		return
	}

	for _, aggregate := range expired {
		cmd, err := commands.NewRemoveOrderCommand(aggregate.ID())
		if err != nil {
			j.logger.ErrorContext(ctx, "Ready order cleanup failed to build command",
				"order_id", aggregate.ID().String(), "error", err)
			continue
		}

		if _, err := j.remover.Remove(ctx, cmd); err != nil {
			// Someone else removed it between the sweep and the command.
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Ready order cleanup failed to remove order",
				"order_id", aggregate.ID().String(), "error", err)
		}
	}
}

// Stop stops the cleanup job.
func (j *ReadyOrderCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Ready order cleanup job stopped")
}
