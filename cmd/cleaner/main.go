package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/alert"
	"github.com/goodnatureofminers/transactionchecker/internal/clock"
	"github.com/goodnatureofminers/transactionchecker/internal/config"
	"github.com/goodnatureofminers/transactionchecker/internal/metrics"
	"github.com/goodnatureofminers/transactionchecker/internal/repository/postgres"
	"github.com/goodnatureofminers/transactionchecker/internal/runner"
	"github.com/goodnatureofminers/transactionchecker/internal/service/cleaner"
	"go.uber.org/zap"
)

const jobName = "cleaner"

type cfg struct {
	config.Common
	OvertimeThreshold time.Duration `long:"overtime-threshold" env:"CLEANER_OVERTIME_THRESHOLD" description:"alert on reservations waiting longer than this" default:"24h"`
}

func main() {
	c := cfg{}
	ok, err := config.Parse(&c, os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := c.NewLogger()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := c.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if err := run(ctx, c, logger); err != nil {
		logger.Fatal("reservation cleaner failed", zap.Error(err))
	}
}

func run(ctx context.Context, c cfg, logger *zap.Logger) error {
	bus, err := alert.NewBus()
	if err != nil {
		return fmt.Errorf("init alert bus: %w", err)
	}
	unsubscribe, err := bus.Subscribe(alert.LogHandler(logger))
	if err != nil {
		return fmt.Errorf("subscribe alert log: %w", err)
	}
	defer unsubscribe()

	repo, err := postgres.NewRepository(c.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	svc, err := cleaner.NewReservationCleaner(
		repo,
		c.Network,
		bus,
		clock.System{},
		c.OvertimeThreshold,
		metrics.NewCleaner(c.Network),
		logger,
	)
	if err != nil {
		return err
	}

	return runner.RunJob(ctx, jobName, c.Common, svc.Clean, logger)
}
