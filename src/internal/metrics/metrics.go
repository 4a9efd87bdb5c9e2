package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Ledger groups the collectors for ledger operations and HTTP traffic.
type Ledger struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	accounts   prometheus.GaugeFunc
	requests   *prometheus.CounterVec
}

// New registers the ledger collectors on reg. accountCount backs the
// ledger_accounts gauge and is read at scrape time.
func New(reg prometheus.Registerer, accountCount func() int) *Ledger {
	m := &Ledger{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_operation_duration_seconds",
				Help:    "Duration of ledger operations",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"operation"},
		),
		accounts: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "ledger_accounts",
				Help: "Number of accounts held by the ledger",
			},
			func() float64 { return float64(accountCount()) },
		),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
	}

	reg.MustRegister(m.operations, m.duration, m.accounts, m.requests)
	return m
}

func (m *Ledger) ObserveOperation(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Ledger) ObserveRequest(method, route, status string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
}
