package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// A custom transaction always owns at least one {in} row, so a missing row
// means it has not been materialized yet.
const unmaterializedTransactionsQuery = `
SELECT
	b.number AS block_number,
	b.hash AS block_hash,
	t.number AS transaction_number,
	t.txid AS transaction_id
FROM {chain}.transaction t
JOIN {chain}.block b ON b.number = t.block_number
LEFT JOIN {custom}.{in} c ON c.block_number = t.block_number AND c.transaction_number = t.number
WHERE t.custom_type_code = $1 AND c.block_number IS NULL
ORDER BY t.block_number, t.number
LIMIT $2`

type blockTransactionRow struct {
	BlockNumber       int64  `db:"block_number"`
	BlockHash         string `db:"block_hash"`
	TransactionNumber int64  `db:"transaction_number"`
	TransactionID     string `db:"transaction_id"`
}

// UnmaterializedTransactions returns classified transactions of a kind without a structured record.
func (t *Tx) UnmaterializedTransactions(ctx context.Context, customType model.CustomType, limit int) ([]model.BlockTransaction, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("unmaterialized_transactions", t.network, err, start)
	}()

	prefix, err := customType.TablePrefix()
	if err != nil {
		return nil, err
	}

	var rows []blockTransactionRow
	query := t.build(unmaterializedTransactionsQuery, "{in}", prefix+"_in")
	if err = t.tx.SelectContext(ctx, &rows, query, customType.Code(), limit); err != nil {
		return nil, fmt.Errorf("select unmaterialized %s transactions: %w", customType, err)
	}

	transactions := make([]model.BlockTransaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, model.BlockTransaction{
			BlockNumber:       row.BlockNumber,
			BlockHash:         row.BlockHash,
			TransactionNumber: row.TransactionNumber,
			TransactionID:     row.TransactionID,
		})
	}
	return transactions, nil
}
