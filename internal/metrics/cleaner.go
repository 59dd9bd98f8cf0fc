package metrics

import (
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cleanerPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cleaner",
		Name:      "passes_total",
		Help:      "Count of reservation cleanup passes.",
	}, []string{"network", "status"})
	cleanerPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "cleaner",
		Name:      "pass_duration_seconds",
		Help:      "Duration of a reservation cleanup pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	cleanerReservationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cleaner",
		Name:      "reservations_total",
		Help:      "Count of checked reservations by outcome.",
	}, []string{"network", "outcome"})
)

// Cleaner tracks metrics for the reservation cleaner.
type Cleaner struct {
	network string
}

func NewCleaner(network model.Network) *Cleaner {
	return &Cleaner{network: networkLabel(network)}
}

func (m Cleaner) ObservePass(err error, started time.Time) {
	cleanerPassesTotal.WithLabelValues(m.network, status(err)).Inc()
	cleanerPassDuration.WithLabelValues(m.network, status(err)).Observe(time.Since(started).Seconds())
}

func (m Cleaner) ObserveReservation(outcome string) {
	cleanerReservationsTotal.WithLabelValues(m.network, outcome).Inc()
}
