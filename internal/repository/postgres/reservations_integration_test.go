package postgres

import (
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"github.com/shopspring/decimal"
)

func (s *RepositorySuite) TestReservationReleasedOnceTransactionLands() {
	created := time.Now().Add(-100 * time.Hour).UTC().Truncate(time.Microsecond)
	_, err := s.repo.db.ExecContext(s.testCtx, `
INSERT INTO testnet.staking_withdrawal_reserved (withdrawal_id, transaction_id, customer_address, vout, create_time)
VALUES ($1, $2, $3, $4, $5)`, 1, "abcde", "tf1qcustomer", decimal.RequireFromString("0.12345678"), created)
	s.Require().NoError(err)

	s.inTx(func(tx store.Tx) {
		reservations, err := tx.StakingWithdrawalReservations(s.testCtx)
		s.Require().NoError(err)
		s.Require().Len(reservations, 1)
		s.Equal("0.12345678", reservations[0].Vout.StringFixed(8))
		s.True(reservations[0].CreateTime.Equal(created))

		exists, err := tx.TransactionExists(s.testCtx, "abcde")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.seedBlock(1, "hash-1")
	s.seedTransaction(1, 0, "abcde", nil)

	s.inTx(func(tx store.Tx) {
		exists, err := tx.TransactionExists(s.testCtx, "abcde")
		s.Require().NoError(err)
		s.True(exists)

		s.Require().NoError(tx.DeleteStakingWithdrawalReservation(s.testCtx, model.StakingWithdrawalReservation{
			WithdrawalID:  1,
			TransactionID: "abcde",
		}))
	})

	s.Equal(0, s.countRows("testnet.staking_withdrawal_reserved"))
}

func (s *RepositorySuite) TestRollbackDiscardsPage() {
	s.seedBlock(3, "hash-3")
	s.seedTransaction(3, 0, "tx-3-0", nil)

	session, err := s.repo.Open(s.testCtx, model.Testnet)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(session.Close())
	}()

	tx, err := session.Begin(s.testCtx)
	s.Require().NoError(err)
	s.Require().NoError(tx.UpdateTransactionCustomType(s.testCtx, model.Transaction{BlockNumber: 3, Number: 0}, model.CustomTypeNone))
	s.Require().NoError(tx.Rollback())

	tx, err = session.Begin(s.testCtx)
	s.Require().NoError(err)
	got, err := tx.UnclassifiedTransactions(s.testCtx, 10)
	s.Require().NoError(err)
	s.Len(got, 1)
	s.Require().NoError(tx.Rollback())
}
