package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const addressNumbersQuery = `
SELECT number, address
FROM {chain}.address
WHERE address = ANY($1)`

// AddressNumbers returns the registered numbers of the given addresses; unknown addresses are absent.
func (t *Tx) AddressNumbers(ctx context.Context, addresses []string) (numbers map[string]int64, err error) {
	start := time.Now()
	defer func() {
		t.metrics.Observe("address_numbers", t.network, err, start)
	}()

	numbers = make(map[string]int64, len(addresses))
	if len(addresses) == 0 {
		return numbers, nil
	}

	rows, err := t.tx.QueryxContext(ctx, t.build(addressNumbersQuery), pq.Array(addresses))
	if err != nil {
		return nil, fmt.Errorf("select addresses: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var (
			number  int64
			address string
		)
		if err = rows.Scan(&number, &address); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		numbers[address] = number
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses: %w", err)
	}
	return numbers, nil
}
