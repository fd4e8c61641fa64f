package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestCounter counts remote gateway calls with labels.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of remote API requests",
		},
		[]string{"capability", "method", "status"},
	)

	// RequestDurationHistogram records request duration in seconds.
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of remote API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"capability", "method"},
	)
)

func init() {
	prometheus.MustRegister(RequestCounter, RequestDurationHistogram)
}

// ObserveRequest records one finished gateway call. A status of 0 means the
// request never produced an HTTP response (transport failure).
func ObserveRequest(capability, method string, status int, elapsed time.Duration) {
	code := "error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	RequestCounter.WithLabelValues(capability, method, code).Inc()
	RequestDurationHistogram.WithLabelValues(capability, method).Observe(elapsed.Seconds())
}
