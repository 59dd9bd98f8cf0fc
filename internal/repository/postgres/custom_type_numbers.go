package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

const customTypeNumbersQuery = `
SELECT number, code
FROM {custom}.custom_type`

// CustomTypeNumbers maps every catalogued custom type to its internal number.
func (t *Tx) CustomTypeNumbers(ctx context.Context) (numbers map[model.CustomType]int64, err error) {
	start := time.Now()
	defer func() {
		t.metrics.Observe("custom_type_numbers", t.network, err, start)
	}()

	rows, err := t.tx.QueryxContext(ctx, t.build(customTypeNumbersQuery))
	if err != nil {
		return nil, fmt.Errorf("select custom types: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	numbers = make(map[model.CustomType]int64)
	for rows.Next() {
		var (
			number int64
			code   string
		)
		if err = rows.Scan(&number, &code); err != nil {
			return nil, fmt.Errorf("scan custom type: %w", err)
		}
		var customType model.CustomType
		if customType, err = model.ParseCustomTypeCode(code); err != nil {
			return nil, err
		}
		numbers[customType] = number
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom types: %w", err)
	}
	return numbers, nil
}
