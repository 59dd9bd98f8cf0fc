// Package reconciler checks open transactions of the lock API against chain data and signatures.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/goodnatureofminers/transactionchecker/pkg/workerpool"
	"go.uber.org/zap"
)

// Skip reasons reported to metrics.
const (
	skipIncomplete        = "incomplete"
	skipWithdrawalMissing = "withdrawal_missing"
)

// ReconciliationManager never writes to the relational store; verdicts go back through the API.
type ReconciliationManager struct {
	api           ApiAccessHandler
	chain         ChainDataProvider
	verifyAddress string
	workers       int
	metrics       Metrics
	logger        *zap.Logger
}

// NewReconciliationManager checks issuer signatures against verifyAddress.
// Up to workers open transactions are checked at once; less than one means one.
func NewReconciliationManager(
	api ApiAccessHandler,
	chain ChainDataProvider,
	verifyAddress string,
	workers int,
	metrics Metrics,
	logger *zap.Logger,
) (*ReconciliationManager, error) {
	if verifyAddress == "" {
		return nil, errors.New("verify address is required")
	}
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	if workers < 1 {
		workers = 1
	}
	return &ReconciliationManager{
		api:           api,
		chain:         chain,
		verifyAddress: verifyAddress,
		workers:       workers,
		metrics:       metrics,
		logger:        logger.Named("reconciler"),
	}, nil
}

// Execute submits exactly one verdict per open transaction that carries enough data to be checked.
func (m *ReconciliationManager) Execute(ctx context.Context) error {
	withdrawals, err := m.api.PendingWithdrawals(ctx)
	if err != nil {
		return fmt.Errorf("list pending withdrawals: %w", err)
	}
	transactions, err := m.api.OpenTransactions(ctx)
	if err != nil {
		return fmt.Errorf("list open transactions: %w", err)
	}

	byID := make(map[int64]model.PendingWithdrawal, len(withdrawals))
	for _, withdrawal := range withdrawals {
		if withdrawal.ID != 0 {
			byID[withdrawal.ID] = withdrawal
		}
	}

	var submitted atomic.Int64
	err = workerpool.Each(ctx, m.workers, transactions, func(ctx context.Context, transaction model.OpenTransaction) error {
		ok, err := m.reconcile(ctx, transaction, byID)
		if err != nil {
			return fmt.Errorf("reconcile transaction %s: %w", transaction.ID, err)
		}
		if ok {
			submitted.Add(1)
		}
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info("reconciliation finished",
		zap.Int("withdrawals", len(withdrawals)),
		zap.Int("open_transactions", len(transactions)),
		zap.Int64("submitted", submitted.Load()),
	)
	return nil
}

// reconcile reports whether a verdict was submitted.
func (m *ReconciliationManager) reconcile(
	ctx context.Context,
	transaction model.OpenTransaction,
	withdrawals map[int64]model.PendingWithdrawal,
) (bool, error) {
	if !transaction.Complete() {
		m.skip(transaction, skipIncomplete)
		return false, nil
	}

	var withdrawal *model.PendingWithdrawal
	if id, ok := transaction.WithdrawalID(); ok {
		w, found := withdrawals[id]
		if !found || !w.Complete() {
			m.skip(transaction, skipWithdrawalMissing)
			return false, nil
		}
		withdrawal = &w
	}

	verdict, err := m.verdict(ctx, transaction, withdrawal)
	if err != nil {
		return false, err
	}

	if err := m.api.SubmitVerificationResult(ctx, transaction.ID, verdict); err != nil {
		return false, fmt.Errorf("submit verdict: %w", err)
	}
	m.metrics.ObserveVerdict(verdict)
	m.logger.Info("verdict submitted",
		zap.String("transaction", transaction.ID),
		zap.Bool("verified", verdict.Verified),
		zap.String("reason", string(verdict.Reason)),
	)
	return true, nil
}

func (m *ReconciliationManager) verdict(
	ctx context.Context,
	transaction model.OpenTransaction,
	withdrawal *model.PendingWithdrawal,
) (model.Verdict, error) {
	decoded, err := m.chain.DecodeRawTransaction(ctx, transaction.RawTx.Hex)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("decode raw transaction: %w", err)
	}

	valid, err := m.chain.VerifySignature(ctx, transaction.RawTx.Hex, m.verifyAddress, transaction.IssuerSignature)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("verify issuer signature: %w", err)
	}
	if !valid {
		return model.InvalidVerdict(model.InvalidIssuerSignature), nil
	}

	if withdrawal == nil {
		return model.VerifiedVerdict(), nil
	}

	valid, err = m.chain.VerifySignature(ctx, withdrawal.SignMessage, withdrawal.Address, withdrawal.Signature)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("verify withdraw signature: %w", err)
	}
	if !valid {
		return model.InvalidVerdict(model.InvalidWithdrawSignature), nil
	}

	pays, err := m.paysTo(decoded, withdrawal.Address)
	if err != nil {
		return model.Verdict{}, err
	}
	if !pays {
		return model.InvalidVerdict(model.InvalidWithdrawSignature), nil
	}
	return model.VerifiedVerdict(), nil
}

func (m *ReconciliationManager) paysTo(decoded *btcjson.TxRawDecodeResult, address string) (bool, error) {
	for _, vout := range decoded.Vout {
		addresses, err := m.chain.OutputAddresses(vout)
		if err != nil {
			return false, fmt.Errorf("output %d addresses: %w", vout.N, err)
		}
		for _, candidate := range addresses {
			if candidate == address {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *ReconciliationManager) skip(transaction model.OpenTransaction, reason string) {
	m.metrics.ObserveSkipped(reason)
	m.logger.Debug("open transaction skipped",
		zap.String("transaction", transaction.ID),
		zap.String("reason", reason),
	)
}
