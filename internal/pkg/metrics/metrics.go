package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	once sync.Once

	bookingOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "happy_hotel",
			Name:      "booking_operations_total",
			Help:      "Booking operations by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "happy_hotel",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		},
		[]string{"route", "status"},
	)

	chargedAmount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "happy_hotel",
			Name:      "prepaid_amount_total",
			Help:      "Sum of amounts charged for prepaid bookings, in base currency.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingOperations, httpRequests, chargedAmount)
	})
}

// Observe counts one operation with its outcome.
func Observe(operation string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	bookingOperations.WithLabelValues(operation, outcome).Inc()
}

func AddCharged(amount float64) {
	if amount > 0 {
		chargedAmount.Add(amount)
	}
}

// IncHTTP counts a served request. Unmatched routes share one label.
func IncHTTP(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}
