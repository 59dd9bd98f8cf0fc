package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/transactionchecker/internal/config"
	"github.com/goodnatureofminers/transactionchecker/internal/defichain"
	"github.com/goodnatureofminers/transactionchecker/internal/metrics"
	"github.com/goodnatureofminers/transactionchecker/internal/repository/postgres"
	"github.com/goodnatureofminers/transactionchecker/internal/runner"
	"github.com/goodnatureofminers/transactionchecker/internal/service/updater"
	"go.uber.org/zap"
)

const jobName = "updater"

type cfg struct {
	config.Common
	PageSize         int `long:"page-size" env:"UPDATER_PAGE_SIZE" description:"rows per page" default:"10000"`
	ClassifyPages    int `long:"classify-pages" env:"UPDATER_CLASSIFY_PAGES" description:"classification pages per run" default:"5"`
	MaterializePages int `long:"materialize-pages" env:"UPDATER_MATERIALIZE_PAGES" description:"materialization pages per custom type per run" default:"1"`
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
		logger.Fatal("custom transaction updater failed", zap.Error(err))
	}
}

func run(ctx context.Context, c cfg, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(c.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	rpcClient, err := defichain.Dial(c.RPCURL, c.RPCUser, c.RPCPassword)
	if err != nil {
		return fmt.Errorf("init rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	chain, err := defichain.NewDataProvider(
		defichain.NewRPCClient(rpcClient, c.RPCRPS, metrics.NewRPCClient(c.Network)),
		c.Network,
	)
	if err != nil {
		return fmt.Errorf("init data provider: %w", err)
	}

	svc, err := updater.NewCustomTransactionUpdater(
		repo,
		chain,
		c.Network,
		updater.Config{
			PageSize:         c.PageSize,
			ClassifyPages:    c.ClassifyPages,
			MaterializePages: c.MaterializePages,
		},
		metrics.NewUpdater(c.Network),
		logger,
	)
	if err != nil {
		return err
	}

	return runner.RunJob(ctx, jobName, c.Common, svc.Run, logger)
}
