package jobs

import (
	"context"
	"log/slog"

	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/observability"

	"github.com/robfig/cron/v3"
)

// MetricsExportJob publishes the dashboard aggregates as prometheus gauges.
// Runs every fifteen seconds over the entity cache, so exporting is cheap
// and never touches the store.
type MetricsExportJob struct {
	handler queries.GetMetricsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMetricsExportJob creates a new job for exporting marketplace metrics.
func NewMetricsExportJob(handler queries.GetMetricsQueryHandler, logger *slog.Logger) *MetricsExportJob {
	return &MetricsExportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "metrics_export_job"),
	}
}

// Start begins the metrics export job to run every fifteen seconds.
func (j *MetricsExportJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()

		metrics, err := j.handler.Handle(ctx, queries.NewGetMetricsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Metrics export job failed", "error", err)
			return
		}

		observability.ActiveShipments.Set(float64(metrics.ActiveShipments))
		observability.PendingRequests.Set(float64(metrics.PendingRequests))
		observability.AcceptedToday.Set(float64(metrics.AcceptedToday))
		observability.EstimatedCost.Set(float64(metrics.EstimatedCost))
		observability.ActiveTrucks.Set(float64(metrics.ActiveTrucks))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Metrics export job started (running every fifteen seconds)")
	return nil
}

// Stop stops the metrics export job.
func (j *MetricsExportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Metrics export job stopped")
}
