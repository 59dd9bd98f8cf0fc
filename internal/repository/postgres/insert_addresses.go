package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

const insertAddressQuery = `
INSERT INTO {chain}.address (number, address) VALUES ($1, $2)`

// InsertAddresses registers newly allocated addresses.
func (t *Tx) InsertAddresses(ctx context.Context, addresses []model.Address) (err error) {
	start := time.Now()
	defer func() {
		t.metrics.Observe("insert_addresses", t.network, err, start)
	}()

	if len(addresses) == 0 {
		return nil
	}

	stmt, err := t.tx.PreparexContext(ctx, t.build(insertAddressQuery))
	if err != nil {
		return fmt.Errorf("prepare address insert: %w", err)
	}
	defer func() {
		if closeErr := stmt.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close address statement: %w", closeErr)
		}
	}()

	for _, address := range addresses {
		if _, err = stmt.ExecContext(ctx, address.Number, address.Address); err != nil {
			return fmt.Errorf("insert address %d %s: %w", address.Number, address.Address, err)
		}
	}
	return nil
}
