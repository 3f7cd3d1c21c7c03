// Package http exposes the marketplace operations over an echo server.
package http

import (
	"errors"
	"net/http"
	"time"

	"freightops/internal/core/application/usecases/commands"
	"freightops/internal/core/application/usecases/queries"
	"freightops/internal/core/domain/model/kernel"
	"freightops/internal/core/domain/model/request"
	"freightops/internal/core/domain/model/trip"
	"freightops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server implements the HTTP API for handling marketplace requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitRequestHandler  commands.SubmitRequestCommandHandler
	submitOfferHandler    commands.SubmitOfferCommandHandler
	acceptOfferHandler    commands.AcceptOfferCommandHandler
	reportProgressHandler commands.ReportTripProgressCommandHandler
	recordPositionHandler commands.RecordPositionCommandHandler
	cancelRequestHandler  commands.CancelRequestCommandHandler
	submitRatingHandler   commands.SubmitRatingCommandHandler

	// Query handlers
	getMetricsHandler  queries.GetMetricsQueryHandler
	getRequestsHandler queries.GetRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitRequestHandler commands.SubmitRequestCommandHandler,
	submitOfferHandler commands.SubmitOfferCommandHandler,
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	reportProgressHandler commands.ReportTripProgressCommandHandler,
	recordPositionHandler commands.RecordPositionCommandHandler,
	cancelRequestHandler commands.CancelRequestCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	getMetricsHandler queries.GetMetricsQueryHandler,
	getRequestsHandler queries.GetRequestsQueryHandler,
) *Server {
	return &Server{
		submitRequestHandler:  submitRequestHandler,
		submitOfferHandler:    submitOfferHandler,
		acceptOfferHandler:    acceptOfferHandler,
		reportProgressHandler: reportProgressHandler,
		recordPositionHandler: recordPositionHandler,
		cancelRequestHandler:  cancelRequestHandler,
		submitRatingHandler:   submitRatingHandler,
		getMetricsHandler:     getMetricsHandler,
		getRequestsHandler:    getRequestsHandler,
	}
}

// RegisterRoutes binds every API route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/requests", s.SubmitRequest)
	api.GET("/requests", s.GetRequests)
	api.POST("/requests/:id/offers", s.SubmitOffer)
	api.POST("/requests/:id/accept-offer", s.AcceptOffer)
	api.POST("/requests/:id/cancel", s.CancelRequest)
	api.POST("/trips/:id/progress", s.ReportTripProgress)
	api.POST("/trips/:id/position", s.RecordPosition)
	api.POST("/ratings", s.SubmitRating)
	api.GET("/metrics", s.GetMetrics)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewRequestBody carries the payload of POST /api/v1/requests.
type NewRequestBody struct {
	ClientID             string  `json:"client_id"`
	Origin               string  `json:"origin"`
	Destination          string  `json:"destination"`
	TruckType            string  `json:"truck_type"`
	TrucksCount          int     `json:"trucks_count"`
	MinManufacturingYear *int    `json:"min_manufacturing_year,omitempty"`
	Notes                *string `json:"notes,omitempty"`
}

// NewOfferBody carries the payload of POST /api/v1/requests/:id/offers.
type NewOfferBody struct {
	DriverID       string  `json:"driver_id"`
	Price          int64   `json:"price"`
	EstimatedHours *int    `json:"estimated_hours,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// AcceptOfferBody carries the payload of POST /api/v1/requests/:id/accept-offer.
type AcceptOfferBody struct {
	OfferID string `json:"offer_id"`
}

// ProgressBody carries the payload of POST /api/v1/trips/:id/progress.
type ProgressBody struct {
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// PositionBody carries the payload of POST /api/v1/trips/:id/position.
type PositionBody struct {
	Lat        float64   `json:"lat"`
	Lng        float64   `json:"lng"`
	Heading    *float64  `json:"heading,omitempty"`
	Speed      *float64  `json:"speed,omitempty"`
	ReportedAt time.Time `json:"reported_at"`
}

// NewRatingBody carries the payload of POST /api/v1/ratings.
type NewRatingBody struct {
	RequestID string  `json:"request_id"`
	DriverID  string  `json:"driver_id"`
	ClientID  string  `json:"client_id"`
	Score     int     `json:"score"`
	Comment   *string `json:"comment,omitempty"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AcceptedResponse returns the identifiers of the records an acceptance
// created.
type AcceptedResponse struct {
	TripID    string `json:"trip_id"`
	InvoiceID string `json:"invoice_id"`
}

// SubmitRequest handles POST /api/v1/requests - posts a new transport request.
func (s *Server) SubmitRequest(ctx echo.Context) error {
	var body NewRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	truckType, err := request.TruckTypeFromString(body.TruckType)
	if err != nil {
		return badRequest(ctx, "Invalid truck type: "+err.Error())
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRequestCommand(
		requestID,
		clientID,
		body.Origin,
		body.Destination,
		truckType,
		body.TrucksCount,
		body.MinManufacturingYear,
		body.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid request data: "+err.Error())
	}

	if err := s.submitRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: requestID.String()})
}

// SubmitOffer handles POST /api/v1/requests/:id/offers - bids on a request.
func (s *Server) SubmitOffer(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	var body NewOfferBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewSubmitOfferCommand(
		offerID,
		requestID,
		driverID,
		body.Price,
		body.EstimatedHours,
		body.Notes,
	)
	if err != nil {
		return badRequest(ctx, "Invalid offer data: "+err.Error())
	}

	if err := s.submitOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: offerID.String()})
}

// AcceptOffer handles POST /api/v1/requests/:id/accept-offer - settles the
// bidding on a request.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	var body AcceptOfferBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	offerID, err := kernel.UUIDFromString(body.OfferID)
	if err != nil {
		return badRequest(ctx, "Invalid offer id: "+err.Error())
	}

	cmd, err := commands.NewAcceptOfferCommand(requestID, offerID)
	if err != nil {
		return badRequest(ctx, "Invalid acceptance data: "+err.Error())
	}

	result, err := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, AcceptedResponse{
		TripID:    result.TripID.String(),
		InvoiceID: result.InvoiceID.String(),
	})
}

// CancelRequest handles POST /api/v1/requests/:id/cancel - withdraws a request.
func (s *Server) CancelRequest(ctx echo.Context) error {
	requestID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	cmd, err := commands.NewCancelRequestCommand(requestID)
	if err != nil {
		return badRequest(ctx, "Invalid cancellation data: "+err.Error())
	}

	if err := s.cancelRequestHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportTripProgress handles POST /api/v1/trips/:id/progress - advances a
// trip milestone.
func (s *Server) ReportTripProgress(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	var body ProgressBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := trip.StatusFromString(body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid trip status: "+err.Error())
	}

	cmd, err := commands.NewReportTripProgressCommand(tripID, status, body.Progress)
	if err != nil {
		return badRequest(ctx, "Invalid progress data: "+err.Error())
	}

	if err := s.reportProgressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordPosition handles POST /api/v1/trips/:id/position - records telemetry.
func (s *Server) RecordPosition(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	var body PositionBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	position, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	cmd, err := commands.NewRecordPositionCommand(tripID, position, body.Heading, body.Speed, body.ReportedAt)
	if err != nil {
		return badRequest(ctx, "Invalid position data: "+err.Error())
	}

	if err := s.recordPositionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitRating handles POST /api/v1/ratings - rates the driver who executed
// a request.
func (s *Server) SubmitRating(ctx echo.Context) error {
	var body NewRatingBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestID, err := kernel.UUIDFromString(body.RequestID)
	if err != nil {
		return badRequest(ctx, "Invalid request id: "+err.Error())
	}

	driverID, err := kernel.UUIDFromString(body.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	clientID, err := kernel.UUIDFromString(body.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id: "+err.Error())
	}

	ratingID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRatingCommand(ratingID, requestID, driverID, clientID, body.Score, body.Comment)
	if err != nil {
		return badRequest(ctx, "Invalid rating data: "+err.Error())
	}

	if err := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: ratingID.String()})
}

// GetMetrics handles GET /api/v1/metrics - computes the dashboard aggregates.
func (s *Server) GetMetrics(ctx echo.Context) error {
	metrics, err := s.getMetricsHandler.Handle(ctx.Request().Context(), queries.NewGetMetricsQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, metrics)
}

// GetRequests handles GET /api/v1/requests - lists cached requests, with
// optional ?status= and ?client_id= filters.
func (s *Server) GetRequests(ctx echo.Context) error {
	query := queries.NewGetRequestsQuery()
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := request.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}

		query, err = queries.NewGetRequestsByStatusQuery(status)
		if err != nil {
			return badRequest(ctx, "Invalid status filter: "+err.Error())
		}
	}
	if raw := ctx.QueryParam("client_id"); raw != "" {
		clientID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid client id filter: "+err.Error())
		}

		query, err = query.FilteredByClient(clientID)
		if err != nil {
			return badRequest(ctx, "Invalid client id filter: "+err.Error())
		}
	}

	views, err := s.getRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, views)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a use case error onto the API's status code taxonomy.
func fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrConflictingAcceptance), errors.Is(err, errs.ErrStaleUpdate):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrIllegalTransition):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
