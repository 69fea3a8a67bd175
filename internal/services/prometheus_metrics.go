package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsTotal    *prometheus.CounterVec
	cycleStartDayUpdates prometheus.Counter
	persistDuration      prometheus.Histogram
	adviceRequests       *prometheus.CounterVec
	adviceDuration       prometheus.Histogram
	ledgerSize           prometheus.Gauge
	httpErrorsTotal      *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_total",
				Help: "Total number of ledger mutations by operation and type",
			},
			[]string{"operation", "type"},
		),
		cycleStartDayUpdates: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "cycle_start_day_updates_total",
				Help: "Total number of billing cycle start day updates",
			},
		),
		persistDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_persist_duration_milliseconds",
				Help:    "Ledger persistence duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		adviceRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "advice_requests_total",
				Help: "Total number of advice generation requests by status",
			},
			[]string{"status"},
		),
		adviceDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "advice_generation_duration_seconds",
				Help:    "Advice generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		ledgerSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions_current",
				Help: "Current number of transactions in the ledger",
			},
		),
		httpErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_errors_total",
				Help: "Total number of HTTP error responses by code",
			},
			[]string{"code"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	txType := tags["type"]

	switch name {
	case "ledger.transaction.created":
		m.transactionsTotal.WithLabelValues("create", txType).Inc()
	case "ledger.transaction.updated":
		m.transactionsTotal.WithLabelValues("update", txType).Inc()
	case "ledger.transaction.deleted":
		m.transactionsTotal.WithLabelValues("delete", txType).Inc()
	case "ledger.cycle_start_day.updated":
		m.cycleStartDayUpdates.Inc()
	case "advisor.request":
		if status := tags["status"]; status != "" {
			m.adviceRequests.WithLabelValues(status).Inc()
		}
	case "http.error":
		if code := tags["code"]; code != "" {
			m.httpErrorsTotal.WithLabelValues(code).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.persist":
		m.persistDuration.Observe(float64(duration.Milliseconds()))
	case "advisor.generate":
		m.adviceDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "ledger.size" {
		m.ledgerSize.Set(value)
	}
}
