package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	bookingsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guideway_bookings_created_total",
			Help: "Bookings created, labeled by initial status",
		},
		[]string{"status"},
	)

	bookingStatusChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guideway_booking_status_changes_total",
			Help: "Booking status transitions, labeled by target status",
		},
		[]string{"status"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guideway_http_requests_total",
			Help: "HTTP requests, labeled by method, path and status code",
		},
		[]string{"method", "path", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "guideway_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// Register installs the collectors into the default registry. Safe to
// call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			bookingsCreated,
			bookingStatusChanges,
			httpRequests,
			httpDuration,
		)
	})
}

func IncBookingCreated(status string) {
	bookingsCreated.WithLabelValues(status).Inc()
}

func IncBookingStatusChanged(status string) {
	bookingStatusChanges.WithLabelValues(status).Inc()
}

func ObserveHTTPRequest(method, path, code string, seconds float64) {
	httpRequests.WithLabelValues(method, path, code).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}
