package updater

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"go.uber.org/zap"
)

const stageClassify = "classify"

// classify commits one database transaction per page; a failure rolls back only the current page.
func (u *CustomTransactionUpdater) classify(ctx context.Context, r *run) (int, error) {
	total := 0
	for page := 1; page <= u.cfg.ClassifyPages; page++ {
		n, err := u.classifyPage(ctx, r.session)
		if err != nil {
			return total, fmt.Errorf("classify page %d: %w", page, err)
		}
		total += n
		if n < u.cfg.PageSize {
			break
		}
	}
	return total, nil
}

func (u *CustomTransactionUpdater) classifyPage(ctx context.Context, session store.Session) (n int, err error) {
	started := time.Now()
	defer func() {
		u.metrics.ObserveStage(stageClassify, err, n, started)
	}()

	tx, err := session.Begin(ctx)
	if err != nil {
		return 0, err
	}

	transactions, err := tx.UnclassifiedTransactions(ctx, u.cfg.PageSize)
	if err != nil {
		return 0, store.Rollback(tx, err)
	}

	var blocks blockHashCache
	for _, transaction := range transactions {
		customType, err := u.classifyTransaction(ctx, tx, &blocks, transaction)
		if err != nil {
			return 0, store.Rollback(tx, err)
		}

		if transaction.CustomType == nil || *transaction.CustomType != customType {
			if err := tx.UpdateTransactionCustomType(ctx, transaction, customType); err != nil {
				return 0, store.Rollback(tx, err)
			}
		}
		u.metrics.ObserveClassified(customType)
		u.logger.Debug("transaction classified",
			zap.Int64("block", transaction.BlockNumber),
			zap.Int64("transaction", transaction.Number),
			zap.String("custom_type", customType.String()),
		)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return len(transactions), nil
}

// classifyTransaction returns the type of the first output carrying a non-zero custom type.
func (u *CustomTransactionUpdater) classifyTransaction(
	ctx context.Context,
	tx store.Tx,
	blocks *blockHashCache,
	transaction model.Transaction,
) (model.CustomType, error) {
	applied, err := u.chain.IsCustomTransactionApplied(ctx, transaction.TxID, transaction.BlockNumber)
	if err != nil {
		return model.CustomTypeNone, err
	}
	if !applied {
		return model.CustomTypeNone, nil
	}

	blockHash, err := blocks.lookup(ctx, tx, transaction)
	if err != nil {
		return model.CustomTypeNone, err
	}

	raw, err := u.chain.GetTransaction(ctx, transaction.TxID, blockHash)
	if err != nil {
		return model.CustomTypeNone, err
	}

	for _, vout := range raw.Vout {
		customType, err := u.chain.ClassifyOutput(vout.ScriptPubKey.Hex)
		if err != nil {
			return model.CustomTypeNone, fmt.Errorf("classify output %d of %s: %w", vout.N, transaction.TxID, err)
		}
		if customType != model.CustomTypeNone {
			return customType, nil
		}
	}
	return model.CustomTypeNone, nil
}

// blockHashCache remembers only the last looked up block.
type blockHashCache struct {
	number    int64
	blockHash string
	valid     bool
}

func (c *blockHashCache) lookup(ctx context.Context, tx store.Tx, transaction model.Transaction) (string, error) {
	if c.valid && c.number == transaction.BlockNumber {
		return c.blockHash, nil
	}

	block, err := tx.BlockByNumber(ctx, transaction.BlockNumber)
	if err != nil {
		return "", err
	}
	if block == nil {
		return "", fmt.Errorf("block %d of transaction %s: %w", transaction.BlockNumber, transaction.TxID, model.ErrBlockNotFound)
	}

	c.number, c.blockHash, c.valid = block.Number, block.Hash, true
	return c.blockHash, nil
}
