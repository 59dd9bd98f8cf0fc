// Package cleaner releases staking withdrawal reservations once their transaction is on chain.
package cleaner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/transactionchecker/internal/clock"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/internal/store"
	"go.uber.org/zap"
)

// DefaultOvertime is how long a reservation may wait for its transaction before alerting.
const DefaultOvertime = 24 * time.Hour

// Reservation outcomes reported to metrics.
const (
	OutcomeReleased = "released"
	OutcomeOvertime = "overtime"
	OutcomePending  = "pending"
)

type ReservationCleaner struct {
	store     store.Store
	network   model.Network
	publisher AlertPublisher
	clock     clock.Clock
	overtime  time.Duration
	metrics   Metrics
	logger    *zap.Logger
}

// NewReservationCleaner uses DefaultOvertime when overtime is zero.
func NewReservationCleaner(
	st store.Store,
	network model.Network,
	publisher AlertPublisher,
	clk clock.Clock,
	overtime time.Duration,
	metrics Metrics,
	logger *zap.Logger,
) (*ReservationCleaner, error) {
	if publisher == nil {
		return nil, errors.New("alert publisher is required")
	}
	if metrics == nil {
		return nil, errors.New("cleaner metrics is required")
	}
	if overtime < 0 {
		return nil, fmt.Errorf("overtime threshold %s is negative", overtime)
	}
	if overtime == 0 {
		overtime = DefaultOvertime
	}
	if clk == nil {
		clk = clock.System{}
	}

	return &ReservationCleaner{
		store:     st,
		network:   network,
		publisher: publisher,
		clock:     clk,
		overtime:  overtime,
		metrics:   metrics,
		logger:    logger.Named("cleaner").With(zap.String("network", string(network))),
	}, nil
}

// Clean runs the whole pass in one database transaction. Alerts are published only after it commits.
func (c *ReservationCleaner) Clean(ctx context.Context) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObservePass(err, started)
	}()

	session, err := c.store.Open(ctx, c.network)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			c.logger.Warn("close session failed", zap.Error(closeErr))
		}
	}()

	tx, err := session.Begin(ctx)
	if err != nil {
		return err
	}

	reservations, err := tx.StakingWithdrawalReservations(ctx)
	if err != nil {
		return store.Rollback(tx, err)
	}

	now := c.clock.Now()
	var (
		alerts   []string
		outcomes = make([]string, 0, len(reservations))
	)
	for _, reservation := range reservations {
		outcome, alert, err := c.check(ctx, tx, now, reservation)
		if err != nil {
			return store.Rollback(tx, fmt.Errorf("reservation %d/%s: %w", reservation.WithdrawalID, reservation.TransactionID, err))
		}
		outcomes = append(outcomes, outcome)
		if alert != "" {
			alerts = append(alerts, alert)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	for _, outcome := range outcomes {
		c.metrics.ObserveReservation(outcome)
	}
	for _, alert := range alerts {
		c.publisher.Publish(alert)
	}

	c.logger.Info("reservations checked",
		zap.Int("reservations", len(reservations)),
		zap.Int("alerts", len(alerts)),
	)
	return nil
}

func (c *ReservationCleaner) check(
	ctx context.Context,
	tx store.Tx,
	now time.Time,
	reservation model.StakingWithdrawalReservation,
) (outcome, alert string, err error) {
	exists, err := tx.TransactionExists(ctx, reservation.TransactionID)
	if err != nil {
		return "", "", err
	}
	if exists {
		if err := tx.DeleteStakingWithdrawalReservation(ctx, reservation); err != nil {
			return "", "", err
		}
		c.logger.Debug("reservation released",
			zap.Int64("withdrawal", reservation.WithdrawalID),
			zap.String("transaction", reservation.TransactionID),
		)
		return OutcomeReleased, "", nil
	}

	elapsed := now.Sub(reservation.CreateTime)
	if elapsed <= c.overtime {
		return OutcomePending, "", nil
	}
	return OutcomeOvertime, OvertimeMessage(reservation, elapsed), nil
}

// OvertimeMessage renders the alert for a reservation still waiting after elapsed.
func OvertimeMessage(reservation model.StakingWithdrawalReservation, elapsed time.Duration) string {
	return fmt.Sprintf("Staking Withdrawal Reserved: %d hours overtime: withdrawalId=%d / transactionId=%s / vout=%s",
		int64(elapsed/time.Hour),
		reservation.WithdrawalID,
		reservation.TransactionID,
		reservation.Vout.StringFixed(8),
	)
}
