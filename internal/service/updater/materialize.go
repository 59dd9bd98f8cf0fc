package updater

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/address"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"go.uber.org/zap"
)

const stageMaterialize = "materialize"

func (u *CustomTransactionUpdater) materialize(ctx context.Context, r *run, customType model.CustomType) (int, error) {
	total := 0
	for page := 1; page <= u.cfg.MaterializePages; page++ {
		n, err := u.materializePage(ctx, r, customType)
		if err != nil {
			return total, fmt.Errorf("materialize %s page %d: %w", customType, page, err)
		}
		total += n
		if n < u.cfg.PageSize {
			break
		}
	}
	return total, nil
}

// materializePage commits once after every candidate of the page has been stored.
func (u *CustomTransactionUpdater) materializePage(ctx context.Context, r *run, customType model.CustomType) (n int, err error) {
	started := time.Now()
	defer func() {
		u.metrics.ObserveStage(stageMaterialize, err, n, started)
	}()

	tx, err := r.session.Begin(ctx)
	if err != nil {
		return 0, err
	}

	if r.typeNumbers == nil {
		numbers, err := tx.CustomTypeNumbers(ctx)
		if err != nil {
			return 0, store.Rollback(tx, err)
		}
		r.typeNumbers = numbers
	}
	typeNumber, ok := r.typeNumbers[customType]
	if !ok {
		return 0, store.Rollback(tx, fmt.Errorf("custom type %s is not catalogued", customType))
	}

	candidates, err := tx.UnmaterializedTransactions(ctx, customType, u.cfg.PageSize)
	if err != nil {
		return 0, store.Rollback(tx, err)
	}
	if len(candidates) == 0 {
		return 0, store.Rollback(tx, nil)
	}

	registry, err := address.NewRegistry(ctx, tx)
	if err != nil {
		return 0, store.Rollback(tx, err)
	}

	for _, candidate := range candidates {
		if err := u.materializeTransaction(ctx, tx, registry, candidate, customType, typeNumber); err != nil {
			return 0, store.Rollback(tx, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return len(candidates), nil
}

func (u *CustomTransactionUpdater) materializeTransaction(
	ctx context.Context,
	tx store.Tx,
	registry *address.Registry,
	candidate model.BlockTransaction,
	customType model.CustomType,
	typeNumber int64,
) error {
	raw, err := u.chain.GetTransaction(ctx, candidate.TransactionID, candidate.BlockHash)
	if err != nil {
		return err
	}

	record, err := u.builder.Build(ctx, registry, candidate, customType, typeNumber, raw)
	if err != nil {
		return err
	}

	if err := registry.Flush(ctx); err != nil {
		return err
	}
	if err := tx.InsertCustomTransaction(ctx, record); err != nil {
		return err
	}

	u.logger.Debug("custom transaction materialized",
		zap.Int64("block", candidate.BlockNumber),
		zap.Int64("transaction", candidate.TransactionNumber),
		zap.String("custom_type", customType.String()),
		zap.Int("in", len(record.In)),
		zap.Int("out", len(record.Out)),
	)
	return nil
}
