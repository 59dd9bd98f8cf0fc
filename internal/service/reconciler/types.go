package reconciler

import (
	"context"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainDataProvider interface {
		DecodeRawTransaction(ctx context.Context, rawHex string) (*btcjson.TxRawDecodeResult, error)
		VerifySignature(ctx context.Context, message, address, signature string) (bool, error)
		OutputAddresses(vout btcjson.Vout) ([]string, error)
	}
	ApiAccessHandler interface {
		PendingWithdrawals(ctx context.Context) ([]model.PendingWithdrawal, error)
		OpenTransactions(ctx context.Context) ([]model.OpenTransaction, error)
		SubmitVerificationResult(ctx context.Context, transactionID string, verdict model.Verdict) error
	}
	Metrics interface {
		ObserveVerdict(verdict model.Verdict)
		ObserveSkipped(reason string)
	}
)
