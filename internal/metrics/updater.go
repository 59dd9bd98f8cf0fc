package metrics

import (
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updaterPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "updater",
		Name:      "pages_total",
		Help:      "Count of processed classification and materialization pages.",
	}, []string{"stage", "network", "status"})

	updaterPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "updater",
		Name:      "page_duration_seconds",
		Help:      "Duration of processing one page.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
	}, []string{"stage", "network", "status"})

	updaterPageSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "updater",
		Name:      "page_size",
		Help:      "Number of transactions processed per page.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1..16384
	}, []string{"stage", "network"})

	updaterClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "updater",
		Name:      "classified_total",
		Help:      "Count of classified transactions by custom type.",
	}, []string{"custom_type", "network"})
)

// Updater tracks metrics for the custom transaction updater.
type Updater struct {
	network string
}

func NewUpdater(network model.Network) *Updater {
	return &Updater{network: networkLabel(network)}
}

// ObserveStage records one page of a stage; items is only recorded for successful pages.
func (m Updater) ObserveStage(stage string, err error, items int, started time.Time) {
	updaterPagesTotal.WithLabelValues(stage, m.network, status(err)).Inc()
	updaterPageDuration.WithLabelValues(stage, m.network, status(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		updaterPageSize.WithLabelValues(stage, m.network).Observe(float64(items))
	}
}

func (m Updater) ObserveClassified(customType model.CustomType) {
	updaterClassifiedTotal.WithLabelValues(customType.String(), m.network).Inc()
}
