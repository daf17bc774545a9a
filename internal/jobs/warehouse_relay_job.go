package jobs

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// WarehouseRelayJob periodically hands parked warehouse orders to shippers
// located in the destination city.
type WarehouseRelayJob struct {
	handler  commands.RelayWarehouseOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewWarehouseRelayJob creates a new job for relaying warehouse orders.
// The schedule is a six-field cron expression with a seconds column.
func NewWarehouseRelayJob(
	handler commands.RelayWarehouseOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *WarehouseRelayJob {
	return &WarehouseRelayJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "warehouse_relay_job"),
	}
}

// Start begins the warehouse relay job on its configured schedule.
func (j *WarehouseRelayJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewRelayWarehouseOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoParkedOrderFound) && !errors.Is(err, commands.ErrNoLocalShipperFound) {
				j.logger.ErrorContext(ctx, "Warehouse relay job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Warehouse relay job started", "schedule", j.schedule)
	return nil
}

// Stop stops the warehouse relay job.
func (j *WarehouseRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Warehouse relay job stopped")
}
