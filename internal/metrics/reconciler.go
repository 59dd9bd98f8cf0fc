package metrics

import (
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "verdicts_total",
		Help:      "Count of submitted verdicts.",
	}, []string{"verdict", "reason"})
	reconcilerSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reconciler",
		Name:      "skipped_total",
		Help:      "Count of open transactions skipped without a verdict.",
	}, []string{"reason"})
)

type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

func (m Reconciler) ObserveVerdict(verdict model.Verdict) {
	if verdict.Verified {
		reconcilerVerdictsTotal.WithLabelValues("verified", "").Inc()
		return
	}
	reconcilerVerdictsTotal.WithLabelValues("invalid", string(verdict.Reason)).Inc()
}

func (m Reconciler) ObserveSkipped(reason string) {
	reconcilerSkippedTotal.WithLabelValues(reason).Inc()
}
