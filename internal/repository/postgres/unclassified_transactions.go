package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

const unclassifiedTransactionsQuery = `
SELECT block_number, number, txid, custom_type_code
FROM {chain}.transaction
WHERE custom_type_code IS NULL
ORDER BY block_number, number
LIMIT $1`

type transactionRow struct {
	BlockNumber    int64          `db:"block_number"`
	Number         int64          `db:"number"`
	TxID           string         `db:"txid"`
	CustomTypeCode sql.NullString `db:"custom_type_code"`
}

// UnclassifiedTransactions returns transactions without a custom type code in chain order.
func (t *Tx) UnclassifiedTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("unclassified_transactions", t.network, err, start)
	}()

	var rows []transactionRow
	if err = t.tx.SelectContext(ctx, &rows, t.build(unclassifiedTransactionsQuery), limit); err != nil {
		return nil, fmt.Errorf("select unclassified transactions: %w", err)
	}

	transactions := make([]model.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction := model.Transaction{
			BlockNumber: row.BlockNumber,
			Number:      row.Number,
			TxID:        row.TxID,
		}
		if row.CustomTypeCode.Valid {
			var customType model.CustomType
			customType, err = model.ParseCustomTypeCode(row.CustomTypeCode.String)
			if err != nil {
				return nil, fmt.Errorf("transaction %s: %w", row.TxID, err)
			}
			transaction.CustomType = &customType
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}
