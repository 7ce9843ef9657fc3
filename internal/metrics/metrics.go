package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// Collector groups the service's collectors. A nil *Collector is valid and
// records nothing.
type Collector struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	BookingOpsTotal        *prometheus.CounterVec
	InspectionRetriesTotal prometheus.Counter

	NotificationsDelivered *prometheus.CounterVec
	NotificationsDropped   prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewCollector registers every collector on reg. Pass prometheus.NewRegistry()
// in tests to keep runs isolated.
func NewCollector(namespace string, reg *prometheus.Registry) *Collector {
	f := promauto.With(reg)

	return &Collector{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code.",
		}, []string{"method", "route", "status"}),

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),

		BookingOpsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "operations_total",
			Help:      "Booking lifecycle operations by operation and result.",
		}, []string{"op", "result"}),

		InspectionRetriesTotal: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "inspection_number_retries_total",
			Help:      "Confirm attempts retried after an inspection number conflict.",
		}),

		NotificationsDelivered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "deliveries_total",
			Help:      "Notification deliveries by result.",
		}, []string{"result"}),

		NotificationsDropped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "notification",
			Name:      "queue_dropped_total",
			Help:      "Notifications dropped because the delivery queue was full.",
		}),

		gatherer: reg,
	}
}

func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveBookingOp labels the result "ok", the business error kind, or "error".
func (c *Collector) ObserveBookingOp(op string, err error) {
	if c == nil {
		return
	}
	c.BookingOpsTotal.WithLabelValues(op, Result(err)).Inc()
}

func (c *Collector) IncInspectionRetry() {
	if c == nil {
		return
	}
	c.InspectionRetriesTotal.Inc()
}

func (c *Collector) ObserveDelivery(err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.NotificationsDelivered.WithLabelValues(result).Inc()
}

func (c *Collector) IncDropped() {
	if c == nil {
		return
	}
	c.NotificationsDropped.Inc()
}

func Result(err error) string {
	if err == nil {
		return "ok"
	}
	if kind, ok := httperr.KindOf(err); ok {
		return kind.String()
	}
	return "error"
}
