package postgres

import (
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/alert"
	"github.com/goodnatureofminers/transactionchecker/internal/clock"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/service/cleaner"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type nopCleanerMetrics struct{}

func (nopCleanerMetrics) ObservePass(error, time.Time) {}
func (nopCleanerMetrics) ObserveReservation(string)    {}

func (s *RepositorySuite) seedReservation(vout string, created time.Time) {
	_, err := s.repo.db.ExecContext(s.testCtx, `
INSERT INTO testnet.staking_withdrawal_reserved (withdrawal_id, transaction_id, customer_address, vout, create_time)
VALUES ($1, $2, $3, $4, $5)`, 1, "abcde", "tf1qcustomer", decimal.RequireFromString(vout), created)
	s.Require().NoError(err)
}

func (s *RepositorySuite) runCleaner(now time.Time) []string {
	bus, err := alert.NewBus()
	s.Require().NoError(err)
	var collector alert.Collector
	unsubscribe, err := bus.Subscribe(collector.Handle)
	s.Require().NoError(err)
	defer unsubscribe()

	c, err := cleaner.NewReservationCleaner(s.repo, model.Testnet, bus, clock.Fixed(now), cleaner.DefaultOvertime, nopCleanerMetrics{}, zap.NewNop())
	s.Require().NoError(err)
	s.Require().NoError(c.Clean(s.testCtx))
	return collector.Messages()
}

func (s *RepositorySuite) TestCleanerKeepsYoungReservation() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.seedReservation("1.50000000", now.Add(-5*time.Hour))

	alerts := s.runCleaner(now)

	s.Empty(alerts)
	s.Equal(1, s.countRows("testnet.staking_withdrawal_reserved"))
	s.inTxReservations(func(reservations []model.StakingWithdrawalReservation) {
		s.Require().Len(reservations, 1)
		s.Equal("tf1qcustomer", reservations[0].CustomerAddress)
		s.Equal("1.50000000", reservations[0].Vout.StringFixed(8))
	})
}

func (s *RepositorySuite) TestCleanerAlertsOvertimeReservation() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.seedReservation("0.12345678", now.Add(-25*time.Hour))

	alerts := s.runCleaner(now)

	s.Equal([]string{
		"Staking Withdrawal Reserved: 25 hours overtime: withdrawalId=1 / transactionId=abcde / vout=0.12345678",
	}, alerts)
	s.Equal(1, s.countRows("testnet.staking_withdrawal_reserved"))
}

func (s *RepositorySuite) TestCleanerReleasesLandedReservation() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	s.seedReservation("0.12345678", now.Add(-100*time.Hour))
	s.seedBlock(1, "hash-1")
	s.seedTransaction(1, 0, "abcde", nil)

	alerts := s.runCleaner(now)

	s.Empty(alerts)
	s.Equal(0, s.countRows("testnet.staking_withdrawal_reserved"))
}

func (s *RepositorySuite) inTxReservations(fn func([]model.StakingWithdrawalReservation)) {
	session, err := s.repo.Open(s.testCtx, model.Testnet)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(session.Close())
	}()

	tx, err := session.Begin(s.testCtx)
	s.Require().NoError(err)
	reservations, err := tx.StakingWithdrawalReservations(s.testCtx)
	s.Require().NoError(err)
	s.Require().NoError(tx.Rollback())
	fn(reservations)
}
