package runner

import (
	"context"

	"github.com/goodnatureofminers/transactionchecker/internal/config"
	"github.com/goodnatureofminers/transactionchecker/internal/metrics"
	"github.com/goodnatureofminers/transactionchecker/internal/server"
	"go.uber.org/zap"
)

// RunJob runs job under the scheduling mode of c. Interval mode also serves metrics and,
// when configured, gRPC health; one-shot mode pushes metrics to the Pushgateway.
func RunJob(ctx context.Context, name string, c config.Common, job Job, logger *zap.Logger) error {
	var status StatusReporter
	if c.Daemon() {
		server.StartMetricsServer(ctx, c.MetricsAddr, logger)
		if c.HealthAddr != "" {
			health := server.NewHealth(name, logger)
			go func() {
				if err := health.Serve(ctx, c.HealthAddr); err != nil {
					logger.Error("health server failed", zap.Error(err))
				}
			}()
			status = health
		}
	}

	var pusher Pusher
	if !c.Daemon() {
		pusher = NewPushgateway(c.PushgatewayURL, name, c.Network)
	}

	r, err := NewRunner(Config{Name: name, Interval: c.Interval}, job, metrics.NewJob(name, c.Network), status, pusher, logger)
	if err != nil {
		return err
	}
	return r.Run(ctx)
}
