package postgres

import (
	"context"
	"fmt"
	"time"
)

const transactionExistsQuery = `
SELECT EXISTS (SELECT 1 FROM {chain}.transaction WHERE txid = $1)`

// TransactionExists reports whether a transaction with the txid is mirrored on chain.
func (t *Tx) TransactionExists(ctx context.Context, txid string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("transaction_exists", t.network, err, start)
	}()

	var exists bool
	if err = t.tx.GetContext(ctx, &exists, t.build(transactionExistsQuery), txid); err != nil {
		return false, fmt.Errorf("select transaction %s: %w", txid, err)
	}
	return exists, nil
}
