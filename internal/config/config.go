// Package config holds the command line options shared by the job binaries.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

// Common is embedded by every job binary.
type Common struct {
	Network        model.Network `long:"network" env:"CHECKER_NETWORK" description:"network name (mainnet, testnet, stagnet)" required:"true"`
	PostgresDSN    string        `long:"postgres-dsn" env:"CHECKER_POSTGRES_DSN" description:"PostgreSQL DSN"`
	RPCURL         string        `long:"rpc-url" env:"CHECKER_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8554"`
	RPCUser        string        `long:"rpc-user" env:"CHECKER_RPC_USER" description:"node RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"CHECKER_RPC_PASSWORD" description:"node RPC password"`
	RPCRPS         int           `long:"rpc-rps" env:"CHECKER_RPC_RPS" description:"node RPC requests per second, 0 for unlimited" default:"0"`
	Interval       time.Duration `long:"interval" env:"CHECKER_INTERVAL" description:"repeat the job with this pause, 0 runs it once" default:"0"`
	MetricsAddr    string        `long:"metrics-addr" env:"CHECKER_METRICS_ADDR" description:"address for metrics server in interval mode" default:":2112"`
	HealthAddr     string        `long:"health-addr" env:"CHECKER_HEALTH_ADDR" description:"address for gRPC health server in interval mode"`
	PushgatewayURL string        `long:"pushgateway-url" env:"CHECKER_PUSHGATEWAY_URL" description:"Pushgateway URL for one-shot runs"`
	LogJSON        bool          `long:"log-json" env:"CHECKER_LOG_JSON" description:"log JSON lines instead of console output"`
}

// Parse fills cfg from args and the environment. It reports false when help was requested.
func Parse(cfg any, args []string) (bool, error) {
	if _, err := flags.ParseArgs(cfg, args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return false, nil
		}
		return false, fmt.Errorf("parse flags: %w", err)
	}
	return true, nil
}

func (c Common) Validate() error {
	if c.PostgresDSN == "" {
		return errors.New("postgres dsn is required")
	}
	return c.ValidateSchedule()
}

// ValidateSchedule checks the options that do not depend on a database.
func (c Common) ValidateSchedule() error {
	if c.Interval < 0 {
		return errors.New("interval must not be negative")
	}
	if c.RPCRPS < 0 {
		return errors.New("rpc rps must not be negative")
	}
	return nil
}

// Daemon reports whether the job repeats on an interval.
func (c Common) Daemon() bool {
	return c.Interval > 0
}

func (c Common) NewLogger() (*zap.Logger, error) {
	if c.LogJSON {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
