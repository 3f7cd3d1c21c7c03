package jobs

import (
	"context"
	"log/slog"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/observability"

	"github.com/robfig/cron/v3"
)

// OfferExpiryJob sweeps aged pending offers into the Expired state.
// Runs every minute; the cutoff is recomputed on each tick from the
// configured TTL.
type OfferExpiryJob struct {
	handler commands.ExpireOffersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferExpiryJob creates a new job for expiring stale offers.
// Offers pending longer than ttl are settled as Expired.
func NewOfferExpiryJob(
	handler commands.ExpireOffersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *OfferExpiryJob {
	return &OfferExpiryJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_expiry_job"),
	}
}

// Start begins the offer expiry job to run every minute.
func (j *OfferExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().Add(-j.ttl)
		cmd, err := commands.NewExpireOffersCommand(cutoff)
		if err != nil {
			j.logger.ErrorContext(ctx, "Offer expiry job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Offer expiry job failed", "error", err)
			return
		}

		observability.ExpiredOffersRuns.Inc()
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer expiry job started (running every minute)", "ttl", j.ttl)
	return nil
}

// Stop stops the offer expiry job.
func (j *OfferExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer expiry job stopped")
}
