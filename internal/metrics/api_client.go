package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "requests_total",
		Help:      "Count of lock API requests.",
	}, []string{"operation", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "api_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of lock API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// APIClient tracks metrics for lock API requests.
type APIClient struct{}

func NewAPIClient() *APIClient {
	return &APIClient{}
}

func (m APIClient) Observe(operation string, err error, started time.Time) {
	apiRequestsTotal.WithLabelValues(operation, status(err)).Inc()
	apiRequestDuration.WithLabelValues(operation, status(err)).Observe(time.Since(started).Seconds())
}
