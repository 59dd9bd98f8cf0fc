package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// The IS NULL guard keeps a code from ever being overwritten.
const updateTransactionCustomTypeQuery = `
UPDATE {chain}.transaction
SET custom_type_code = $1
WHERE block_number = $2 AND number = $3 AND custom_type_code IS NULL`

// UpdateTransactionCustomType stores the terminal custom type code of an unclassified transaction.
func (t *Tx) UpdateTransactionCustomType(ctx context.Context, transaction model.Transaction, customType model.CustomType) error {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("update_transaction_custom_type", t.network, err, start)
	}()

	result, err := t.tx.ExecContext(ctx, t.build(updateTransactionCustomTypeQuery),
		customType.Code(), transaction.BlockNumber, transaction.Number)
	if err != nil {
		return fmt.Errorf("update transaction %d/%d: %w", transaction.BlockNumber, transaction.Number, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected != 1 {
		err = fmt.Errorf("transaction %d/%d (%s) is missing or already classified",
			transaction.BlockNumber, transaction.Number, transaction.TxID)
		return err
	}
	return nil
}
