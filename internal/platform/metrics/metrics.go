// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Build outcomes recorded on HistoryBuilds.
const (
	OutcomeSuccess             = "success"
	OutcomeClassificationError = "classification_error"
	OutcomeError               = "error"
)

// Metrics groups every collector the service records.
type Metrics struct {
	HTTPRequests         *prometheus.CounterVec
	HTTPLatency          *prometheus.HistogramVec
	HistoryBuilds        *prometheus.CounterVec
	ClassificationErrors *prometheus.CounterVec
	PendingEntries       prometheus.Counter
	MempoolTracked       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_history_http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "route", "status"}),

		HTTPLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wallet_history_http_request_duration_seconds",
			Help:    "Request latency",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"method", "route"}),

		HistoryBuilds: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_history_builds_total",
			Help: "History builds by outcome",
		}, []string{"outcome"}),

		ClassificationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_history_classification_errors_total",
			Help: "Ledger records that could not be mapped to a rail pair, by ledger type",
		}, []string{"type"}),

		PendingEntries: factory.NewCounter(prometheus.CounterOpts{
			Name: "wallet_history_pending_entries_total",
			Help: "Provisional entries layered onto histories from unconfirmed broadcasts",
		}),

		MempoolTracked: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wallet_history_mempool_tracked_transactions",
			Help: "Unconfirmed transactions currently tracked",
		}),
	}
}
