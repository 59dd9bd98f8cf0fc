package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/jmoiron/sqlx"
)

const insertAccountBalanceQuery = `
INSERT INTO {custom}.{table} (block_number, transaction_number, type_number, address_number, token_number, amount)
VALUES ($1, $2, $3, $4, $5, $6)`

// InsertCustomTransaction stores both sides of a structured custom transaction.
func (t *Tx) InsertCustomTransaction(ctx context.Context, transaction model.CustomTransaction) (err error) {
	start := time.Now()
	defer func() {
		t.metrics.Observe("insert_custom_transaction", t.network, err, start)
	}()

	prefix, err := transaction.Type.TablePrefix()
	if err != nil {
		return err
	}

	if err = t.insertBalances(ctx, prefix+"_in", transaction, transaction.In); err != nil {
		return err
	}
	if err = t.insertBalances(ctx, prefix+"_out", transaction, transaction.Out); err != nil {
		return err
	}
	return nil
}

func (t *Tx) insertBalances(ctx context.Context, table string, transaction model.CustomTransaction, balances []model.AccountBalance) (err error) {
	if len(balances) == 0 {
		return nil
	}

	var stmt *sqlx.Stmt
	stmt, err = t.tx.PreparexContext(ctx, t.build(insertAccountBalanceQuery, "{table}", table))
	if err != nil {
		return fmt.Errorf("prepare %s insert: %w", table, err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s statement: %w", table, closeErr)
		}
	}()

	for _, balance := range balances {
		if _, err = stmt.ExecContext(ctx,
			transaction.BlockNumber,
			transaction.TransactionNumber,
			transaction.TypeNumber,
			balance.AddressNumber,
			balance.TokenNumber,
			balance.Amount,
		); err != nil {
			return fmt.Errorf("insert %s %d/%d: %w", table, transaction.BlockNumber, transaction.TransactionNumber, err)
		}
	}
	return nil
}
