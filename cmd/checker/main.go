package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/api"
	"github.com/goodnatureofminers/transactionchecker/internal/config"
	"github.com/goodnatureofminers/transactionchecker/internal/defichain"
	"github.com/goodnatureofminers/transactionchecker/internal/metrics"
	"github.com/goodnatureofminers/transactionchecker/internal/runner"
	"github.com/goodnatureofminers/transactionchecker/internal/service/reconciler"
	"go.uber.org/zap"
)

const jobName = "checker"

type cfg struct {
	config.Common
	APIURL        string        `long:"api-url" env:"CHECKER_API_URL" description:"lock API base URL" required:"true"`
	APIAddress    string        `long:"api-address" env:"CHECKER_API_ADDRESS" description:"address used to sign in to the lock API" required:"true"`
	APISignature  string        `long:"api-signature" env:"CHECKER_API_SIGNATURE" description:"signature used to sign in to the lock API" required:"true"`
	APITimeout    time.Duration `long:"api-timeout" env:"CHECKER_API_TIMEOUT" description:"lock API request timeout" default:"30s"`
	VerifyAddress string        `long:"verify-address" env:"CHECKER_VERIFY_ADDRESS" description:"address that signs open transactions" required:"true"`
	Workers       int           `long:"workers" env:"CHECKER_WORKERS" description:"open transactions checked concurrently" default:"1"`
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

	if err := c.ValidateSchedule(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if err := run(ctx, c, logger); err != nil {
		logger.Fatal("transaction checker failed", zap.Error(err))
	}
}

// run needs no relational store: verdicts go back through the lock API.
func run(ctx context.Context, c cfg, logger *zap.Logger) error {
	client, err := api.NewClient(api.Config{
		URL:       c.APIURL,
		Address:   c.APIAddress,
		Signature: c.APISignature,
		Timeout:   c.APITimeout,
	}, metrics.NewAPIClient())
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

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

	manager, err := reconciler.NewReconciliationManager(client, chain, c.VerifyAddress, c.Workers, metrics.NewReconciler(), logger)
	if err != nil {
		return err
	}

	return runner.RunJob(ctx, jobName, c.Common, manager.Execute, logger)
}
