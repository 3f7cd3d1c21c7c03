package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	offerExpiryJob   *OfferExpiryJob
	metricsExportJob *MetricsExportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	expireOffersHandler commands.ExpireOffersCommandHandler,
	getMetricsHandler queries.GetMetricsQueryHandler,
	offerTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		offerExpiryJob:   NewOfferExpiryJob(expireOffersHandler, offerTTL, logger),
		metricsExportJob: NewMetricsExportJob(getMetricsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.offerExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start offer expiry job: %w", err)
	}

	if err := jm.metricsExportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.offerExpiryJob.Stop()
		return fmt.Errorf("failed to start metrics export job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.offerExpiryJob.Stop()
	jm.metricsExportJob.Stop()
}
