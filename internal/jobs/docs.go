// Package jobs provides scheduled background tasks for the freight
// marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the marketplace core.
//
// # Available Jobs
//
// 1. OfferExpiryJob - Runs every minute to expire pending offers older than the configured TTL
// 2. MetricsExportJob - Runs every fifteen seconds to publish dashboard aggregates as prometheus gauges
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireOffersHandler, getMetricsHandler, offerTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - The expiry job logs failures and retries on the next tick; a sweep that
//     fails mid-transaction rolls back and leaves the offers pending.
//   - The export job logs failures and leaves the previous gauge values in
//     place until the next successful run.
//   - Failed job starts will stop any already running jobs.
package jobs
