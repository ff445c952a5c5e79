package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the service. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// Registry owns every collector below and backs the /metrics endpoint.
	Registry *prometheus.Registry

	paymentsMarked   *prometheus.CounterVec
	paymentsReversed prometheus.Counter
	paymentFailures  *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewMetrics creates a private registry, so repeated construction in tests never
// collides on collector names.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		paymentsMarked: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_payments_marked_total",
				Help: "Transactions marked as paid.",
			},
			[]string{"payment_type"},
		),
		paymentsReversed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "finance_payments_reversed_total",
				Help: "Payments reversed.",
			},
		),
		paymentFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finance_payment_failures_total",
				Help: "Failed payment operations by reason.",
			},
			[]string{"operation", "reason"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finance_http_request_duration_seconds",
				Help:    "Duration of HTTP requests by route and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// IncrPaymentMarked counts a successful MarkAsPaid.
func (m *Metrics) IncrPaymentMarked(paymentType string) {
	if m == nil {
		return
	}
	m.paymentsMarked.WithLabelValues(paymentType).Inc()
}

// IncrPaymentReversed counts a successful ReversePayment.
func (m *Metrics) IncrPaymentReversed() {
	if m == nil {
		return
	}
	m.paymentsReversed.Inc()
}

// IncrPaymentFailure counts a rejected or failed payment operation.
func (m *Metrics) IncrPaymentFailure(operation, reason string) {
	if m == nil {
		return
	}
	m.paymentFailures.WithLabelValues(operation, reason).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}
