package updater

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainDataProvider interface {
		IsCustomTransactionApplied(ctx context.Context, txid string, blockNumber int64) (bool, error)
		GetTransaction(ctx context.Context, txid, blockHash string) (*btcjson.TxRawResult, error)
		ClassifyOutput(scriptHex string) (model.CustomType, error)
		ScriptAddress(script []byte) string
	}
	AddressRegistry interface {
		Number(ctx context.Context, address string) (int64, error)
	}
	Metrics interface {
		ObserveStage(stage string, err error, items int, started time.Time)
		ObserveClassified(customType model.CustomType)
	}
)
