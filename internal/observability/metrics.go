package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveShipments = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "freightops", Name: "active_shipments", Help: "Trips in a non-terminal milestone"})
	PendingRequests = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "freightops", Name: "pending_requests", Help: "Requests still collecting offers"})
	AcceptedToday   = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "freightops", Name: "accepted_today", Help: "Requests accepted since local midnight"})
	EstimatedCost   = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "freightops", Name: "estimated_cost", Help: "Sum of accepted offer prices"})
	ActiveTrucks    = promauto.NewGauge(prometheus.GaugeOpts{Namespace: "freightops", Name: "active_trucks", Help: "Distinct drivers with a non-terminal trip"})

	ExpiredOffersRuns = promauto.NewCounter(prometheus.CounterOpts{Namespace: "freightops", Name: "offer_expiry_runs_total", Help: "Completed offer expiry sweeps"})
)
