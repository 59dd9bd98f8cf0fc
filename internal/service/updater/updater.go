// Package updater classifies mirrored chain transactions and materializes their custom records.
package updater

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"go.uber.org/zap"
)

// Config bounds the work done per run.
type Config struct {
	PageSize         int
	ClassifyPages    int
	MaterializePages int
}

// DefaultConfig classifies up to five pages and materializes one page per type.
func DefaultConfig() Config {
	return Config{
		PageSize:         10_000,
		ClassifyPages:    5,
		MaterializePages: 1,
	}
}

func (c Config) validate() error {
	if c.PageSize <= 0 {
		return errors.New("page size must be positive")
	}
	if c.ClassifyPages < 0 || c.MaterializePages < 0 {
		return errors.New("page counts must not be negative")
	}
	return nil
}

type CustomTransactionUpdater struct {
	store   store.Store
	chain   ChainDataProvider
	builder *CustomTransactionBuilder
	network model.Network
	cfg     Config
	metrics Metrics
	logger  *zap.Logger
}

func NewCustomTransactionUpdater(
	st store.Store,
	chain ChainDataProvider,
	network model.Network,
	cfg Config,
	metrics Metrics,
	logger *zap.Logger,
) (*CustomTransactionUpdater, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, errors.New("updater metrics is required")
	}

	return &CustomTransactionUpdater{
		store:   st,
		chain:   chain,
		builder: NewCustomTransactionBuilder(chain),
		network: network,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("updater").With(zap.String("network", string(network))),
	}, nil
}

// run carries the state that lives exactly as long as one session.
type run struct {
	session     store.Session
	typeNumbers map[model.CustomType]int64
}

// Run classifies pending transactions, then materializes every materializable type.
func (u *CustomTransactionUpdater) Run(ctx context.Context) error {
	return u.withSession(ctx, func(r *run) error {
		classified, err := u.classify(ctx, r)
		if err != nil {
			return err
		}

		materialized := 0
		for _, customType := range model.MaterializableTypes {
			n, err := u.materialize(ctx, r, customType)
			if err != nil {
				return err
			}
			materialized += n
		}

		u.logger.Info("update finished",
			zap.Int("classified", classified),
			zap.Int("materialized", materialized),
		)
		return nil
	})
}

// Classify runs only the classification pages.
func (u *CustomTransactionUpdater) Classify(ctx context.Context) (int, error) {
	var classified int
	err := u.withSession(ctx, func(r *run) error {
		var err error
		classified, err = u.classify(ctx, r)
		return err
	})
	return classified, err
}

// Materialize runs the materialization pages of one custom type.
func (u *CustomTransactionUpdater) Materialize(ctx context.Context, customType model.CustomType) (int, error) {
	var materialized int
	err := u.withSession(ctx, func(r *run) error {
		var err error
		materialized, err = u.materialize(ctx, r, customType)
		return err
	})
	return materialized, err
}

func (u *CustomTransactionUpdater) withSession(ctx context.Context, fn func(r *run) error) error {
	session, err := u.store.Open(ctx, u.network)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			u.logger.Warn("close session failed", zap.Error(closeErr))
		}
	}()

	return fn(&run{session: session})
}
