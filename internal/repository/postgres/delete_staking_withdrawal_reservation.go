package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

const deleteStakingWithdrawalReservationQuery = `
DELETE FROM {chain}.staking_withdrawal_reserved
WHERE withdrawal_id = $1 AND transaction_id = $2`

func (t *Tx) DeleteStakingWithdrawalReservation(ctx context.Context, reservation model.StakingWithdrawalReservation) error {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("delete_staking_withdrawal_reservation", t.network, err, start)
	}()

	if _, err = t.tx.ExecContext(ctx, t.build(deleteStakingWithdrawalReservationQuery),
		reservation.WithdrawalID, reservation.TransactionID); err != nil {
		return fmt.Errorf("delete reservation %d/%s: %w", reservation.WithdrawalID, reservation.TransactionID, err)
	}
	return nil
}
