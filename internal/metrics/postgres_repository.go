package metrics

import (
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	postgresOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of relational store operations.",
	}, []string{"operation", "network", "status"})
	postgresOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of relational store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// PostgresRepository tracks metrics for relational store operations.
type PostgresRepository struct{}

func NewPostgresRepository() *PostgresRepository {
	return &PostgresRepository{}
}

// Observe records a single store operation outcome and duration.
func (m PostgresRepository) Observe(operation string, network model.Network, err error, started time.Time) {
	labels := []string{operation, networkLabel(network), status(err)}
	postgresOperationsTotal.WithLabelValues(labels...).Inc()
	postgresOperationDuration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}
