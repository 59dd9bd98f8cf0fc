package postgres

import (
	"context"
	"fmt"
	"time"
)

const maxAddressNumberQuery = `
SELECT coalesce(max(number), 0) AS max_number
FROM {chain}.address`

// MaxAddressNumber returns the highest allocated address number, or 0 when none exist.
func (t *Tx) MaxAddressNumber(ctx context.Context) (int64, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("max_address_number", t.network, err, start)
	}()

	var number int64
	if err = t.tx.GetContext(ctx, &number, t.build(maxAddressNumberQuery)); err != nil {
		return 0, fmt.Errorf("select max address number: %w", err)
	}
	return number, nil
}
