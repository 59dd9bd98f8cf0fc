// Package store declares the relational store contract shared by the pipelines.
package store

//go:generate mockgen -source=$GOFILE -destination=storemock/store.go -package=storemock

import (
	"context"

	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

type (
	// Store opens run-scoped sessions against the schema set of a network.
	Store interface {
		Open(ctx context.Context, network model.Network) (Session, error)
	}

	// Session is one connection held for the duration of a run.
	Session interface {
		Begin(ctx context.Context) (Tx, error)
		Close() error
	}

	// Tx is a commit-bounded unit of work on a session.
	Tx interface {
		UnclassifiedTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
		UpdateTransactionCustomType(ctx context.Context, transaction model.Transaction, customType model.CustomType) error
		BlockByNumber(ctx context.Context, number int64) (*model.Block, error)

		CustomTypeNumbers(ctx context.Context) (map[model.CustomType]int64, error)
		UnmaterializedTransactions(ctx context.Context, customType model.CustomType, limit int) ([]model.BlockTransaction, error)
		InsertCustomTransaction(ctx context.Context, transaction model.CustomTransaction) error

		AddressNumbers(ctx context.Context, addresses []string) (map[string]int64, error)
		MaxAddressNumber(ctx context.Context) (int64, error)
		InsertAddresses(ctx context.Context, addresses []model.Address) error

		StakingWithdrawalReservations(ctx context.Context) ([]model.StakingWithdrawalReservation, error)
		TransactionExists(ctx context.Context, txid string) (bool, error)
		DeleteStakingWithdrawalReservation(ctx context.Context, reservation model.StakingWithdrawalReservation) error

		Commit() error
		Rollback() error
	}
)
