// Package runner schedules a batch job once or on a fixed interval.
package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/clock"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveRun(err error, started time.Time)
	}
	StatusReporter interface {
		SetServing(serving bool)
	}
	Pusher interface {
		Push() error
	}
)

// Job is one invocation of a pipeline.
type Job func(ctx context.Context) error

// Config selects the scheduling mode; a zero Interval runs the job once.
type Config struct {
	Name     string
	Interval time.Duration
}

type Runner struct {
	cfg     Config
	job     Job
	metrics Metrics
	status  StatusReporter
	pusher  Pusher
	logger  *zap.Logger
}

// NewRunner accepts nil status and pusher.
func NewRunner(cfg Config, job Job, metrics Metrics, status StatusReporter, pusher Pusher, logger *zap.Logger) (*Runner, error) {
	if job == nil {
		return nil, errors.New("job is required")
	}
	if metrics == nil {
		return nil, errors.New("runner metrics is required")
	}
	if cfg.Interval < 0 {
		return nil, fmt.Errorf("interval %s is negative", cfg.Interval)
	}
	return &Runner{
		cfg:     cfg,
		job:     job,
		metrics: metrics,
		status:  status,
		pusher:  pusher,
		logger:  logger.Named("runner").With(zap.String("job", cfg.Name)),
	}, nil
}

// Run returns the job error in one-shot mode. In interval mode failures are logged and
// the loop continues until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	if r.cfg.Interval == 0 {
		err := r.runOnce(ctx)
		r.push()
		return err
	}

	r.logger.Info("starting job loop", zap.Duration("interval", r.cfg.Interval))
	for {
		if err := r.runOnce(ctx); err != nil {
			r.logger.Error("job failed", zap.Error(err))
		}
		if err := clock.Wait(ctx, r.cfg.Interval); err != nil {
			r.logger.Info("job loop stopped")
			return nil
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveRun(err, started)
		if r.status != nil {
			r.status.SetServing(err == nil)
		}
	}()

	if err = r.job(ctx); err != nil {
		return err
	}
	r.logger.Info("job finished", zap.Duration("elapsed", time.Since(started)))
	return nil
}

func (r *Runner) push() {
	if r.pusher == nil {
		return
	}
	if err := r.pusher.Push(); err != nil {
		r.logger.Warn("push metrics failed", zap.Error(err))
	}
}

// NewPushgateway returns nil when url is empty.
func NewPushgateway(url, job string, network model.Network) Pusher {
	if url == "" {
		return nil
	}
	return push.New(url, job).
		Gatherer(prometheus.DefaultGatherer).
		Grouping("network", string(network))
}
