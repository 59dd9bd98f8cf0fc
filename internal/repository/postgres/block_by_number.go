package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

const blockByNumberQuery = `
SELECT number, hash
FROM {chain}.block
WHERE number = $1`

// BlockByNumber returns nil when the block is not mirrored.
func (t *Tx) BlockByNumber(ctx context.Context, number int64) (*model.Block, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("block_by_number", t.network, err, start)
	}()

	var block model.Block
	err = t.tx.QueryRowxContext(ctx, t.build(blockByNumberQuery), number).Scan(&block.Number, &block.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select block %d: %w", number, err)
	}
	return &block, nil
}
