package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/shopspring/decimal"
)

const stakingWithdrawalReservationsQuery = `
SELECT withdrawal_id, transaction_id, customer_address, vout, create_time
FROM {chain}.staking_withdrawal_reserved
ORDER BY withdrawal_id, transaction_id`

type reservationRow struct {
	WithdrawalID    int64           `db:"withdrawal_id"`
	TransactionID   string          `db:"transaction_id"`
	CustomerAddress string          `db:"customer_address"`
	Vout            decimal.Decimal `db:"vout"`
	CreateTime      time.Time       `db:"create_time"`
}

// StakingWithdrawalReservations returns every reservation of the network.
func (t *Tx) StakingWithdrawalReservations(ctx context.Context) ([]model.StakingWithdrawalReservation, error) {
	start := time.Now()
	var err error
	defer func() {
		t.metrics.Observe("staking_withdrawal_reservations", t.network, err, start)
	}()

	var rows []reservationRow
	if err = t.tx.SelectContext(ctx, &rows, t.build(stakingWithdrawalReservationsQuery)); err != nil {
		return nil, fmt.Errorf("select staking withdrawal reservations: %w", err)
	}

	reservations := make([]model.StakingWithdrawalReservation, 0, len(rows))
	for _, row := range rows {
		reservations = append(reservations, model.StakingWithdrawalReservation{
			WithdrawalID:    row.WithdrawalID,
			TransactionID:   row.TransactionID,
			CustomerAddress: row.CustomerAddress,
			Vout:            row.Vout,
			CreateTime:      row.CreateTime,
		})
	}
	return reservations, nil
}
