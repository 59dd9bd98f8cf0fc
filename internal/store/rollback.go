package store

import (
	"errors"
	"fmt"
)

// Rollback aborts tx after a failure and joins any rollback error with the cause.
func Rollback(tx Tx, cause error) error {
	if err := tx.Rollback(); err != nil {
		return errors.Join(cause, fmt.Errorf("rollback: %w", err))
	}
	return cause
}
