package cmd

import (
	"log/slog"
	"time"

	httpin "freightops/internal/adapters/in/http"
	"freightops/internal/adapters/in/ws"
	"freightops/internal/adapters/out/postgres"
	"freightops/internal/adapters/out/postgres/feed"
	"freightops/internal/cache"
	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/jobs"
	"freightops/internal/realtime"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	store      *cache.Store
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	// Committed aggregates echo straight into the cache, so the committing
	// node reads its own writes before the change feed catches up.
	store := cache.NewStore()
	echo := realtime.NewCommandEcho(store, logger)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, echo.Publish),
		store:      store,
	}
}

func (c *CompositionRoot) Store() *cache.Store {
	return c.store
}

func (c *CompositionRoot) CreateSubmitRequestCommandHandler() commands.SubmitRequestCommandHandler {
	var f commands.RequestUoWFactory = FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitOfferCommandHandler() commands.SubmitOfferCommandHandler {
	var f commands.BiddingUoWFactory = FuncBiddingUoWFactory(func() commands.BiddingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.AcceptanceUoWFactory = FuncAcceptanceUoWFactory(func() commands.AcceptanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateReportTripProgressCommandHandler() commands.ReportTripProgressCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportTripProgressCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordPositionCommandHandler() commands.RecordPositionCommandHandler {
	var f commands.TelemetryUoWFactory = FuncTelemetryUoWFactory(func() commands.TelemetryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordPositionCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOffersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetMetricsQueryHandler() queries.GetMetricsQueryHandler {
	return queries.NewGetMetricsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetRequestsQueryHandler() queries.GetRequestsQueryHandler {
	return queries.NewGetRequestsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateChangeFeedListener(logger *slog.Logger) *feed.Listener {
	return feed.NewListener(c.config.DSN(), logger)
}

func (c *CompositionRoot) CreateRealtimeConsumer(listener *feed.Listener, logger *slog.Logger) *realtime.Consumer {
	return realtime.NewConsumer(listener, c.store, feed.NewGormSnapshotSource(c.gormDB), logger)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireOffersCommandHandler(),
		c.CreateGetMetricsQueryHandler(),
		time.Duration(c.config.OfferTTLMinutes)*time.Minute,
		logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateSubmitRequestCommandHandler(),
		c.CreateSubmitOfferCommandHandler(),
		c.CreateAcceptOfferCommandHandler(),
		c.CreateReportTripProgressCommandHandler(),
		c.CreateRecordPositionCommandHandler(),
		c.CreateCancelRequestCommandHandler(),
		c.CreateSubmitRatingCommandHandler(),
		c.CreateGetMetricsQueryHandler(),
		c.CreateGetRequestsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateWebSocketHub(logger *slog.Logger) *ws.Hub {
	return ws.NewHub(c.store, logger)
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}

type FuncBiddingUoWFactory func() commands.BiddingUoW

func (f FuncBiddingUoWFactory) Create() commands.BiddingUoW {
	return f()
}

type FuncAcceptanceUoWFactory func() commands.AcceptanceUoW

func (f FuncAcceptanceUoWFactory) Create() commands.AcceptanceUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncTelemetryUoWFactory func() commands.TelemetryUoW

func (f FuncTelemetryUoWFactory) Create() commands.TelemetryUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}
