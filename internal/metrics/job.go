package metrics

import (
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	jobRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "job",
		Name:      "runs_total",
		Help:      "Count of job runs.",
	}, []string{"job", "network", "status"})
	jobRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "job",
		Name:      "run_duration_seconds",
		Help:      "Duration of job runs.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
	}, []string{"job", "network", "status"})
	jobLastSuccess = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "job",
		Name:      "last_success_timestamp_seconds",
		Help:      "Unix time of the last successful run.",
	}, []string{"job", "network"})
)

// Job tracks run outcomes of one batch job.
type Job struct {
	job     string
	network string
}

func NewJob(job string, network model.Network) *Job {
	if job == "" {
		job = "unknown"
	}
	return &Job{job: job, network: networkLabel(network)}
}

func (m Job) ObserveRun(err error, started time.Time) {
	jobRunsTotal.WithLabelValues(m.job, m.network, status(err)).Inc()
	jobRunDuration.WithLabelValues(m.job, m.network, status(err)).Observe(time.Since(started).Seconds())
	if err == nil {
		jobLastSuccess.WithLabelValues(m.job, m.network).SetToCurrentTime()
	}
}
