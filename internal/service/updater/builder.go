package updater

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/transactionchecker/internal/defichain"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
	"github.com/shopspring/decimal"
)

// amountExp scales satoshi amounts to coins.
const amountExp = -8

// CustomTransactionBuilder decodes the DfTx output of a classified transaction into its structured record.
type CustomTransactionBuilder struct {
	chain ChainDataProvider
}

func NewCustomTransactionBuilder(chain ChainDataProvider) *CustomTransactionBuilder {
	return &CustomTransactionBuilder{chain: chain}
}

// Build resolves every referenced address through registry, which may allocate new numbers.
func (b *CustomTransactionBuilder) Build(
	ctx context.Context,
	registry AddressRegistry,
	candidate model.BlockTransaction,
	customType model.CustomType,
	typeNumber int64,
	tx *btcjson.TxRawResult,
) (model.CustomTransaction, error) {
	record := model.CustomTransaction{
		Type:              customType,
		TypeNumber:        typeNumber,
		BlockNumber:       candidate.BlockNumber,
		TransactionNumber: candidate.TransactionNumber,
	}

	found, payload, err := customPayload(tx)
	if err != nil {
		return record, fmt.Errorf("transaction %s: %w", candidate.TransactionID, err)
	}
	if found != customType {
		return record, fmt.Errorf("transaction %s carries %s, stored as %s: %w",
			candidate.TransactionID, found, customType, model.ErrCustomTypeMismatch)
	}

	var from, to []defichain.Account
	switch customType {
	case model.CustomTypeAccountToAccount:
		msg, err := defichain.DecodeAccountToAccount(payload)
		if err != nil {
			return record, fmt.Errorf("decode %s %s: %w", customType, candidate.TransactionID, err)
		}
		from = []defichain.Account{{Script: msg.From, Balances: sumBalances(msg.To)}}
		to = msg.To
	case model.CustomTypeAnyAccountsToAccounts:
		msg, err := defichain.DecodeAnyAccountsToAccounts(payload)
		if err != nil {
			return record, fmt.Errorf("decode %s %s: %w", customType, candidate.TransactionID, err)
		}
		from, to = msg.From, msg.To
	default:
		return record, fmt.Errorf("custom type %s is not materializable", customType)
	}

	if record.In, err = b.balances(ctx, registry, from); err != nil {
		return record, err
	}
	if len(record.In) == 0 {
		return record, fmt.Errorf("transaction %s: %w", candidate.TransactionID, model.ErrEmptyCustomTransaction)
	}
	if record.Out, err = b.balances(ctx, registry, to); err != nil {
		return record, err
	}
	return record, nil
}

func (b *CustomTransactionBuilder) balances(ctx context.Context, registry AddressRegistry, accounts []defichain.Account) ([]model.AccountBalance, error) {
	var result []model.AccountBalance
	for _, account := range accounts {
		if len(account.Balances) == 0 {
			continue
		}
		number, err := registry.Number(ctx, b.chain.ScriptAddress(account.Script))
		if err != nil {
			return nil, err
		}
		for _, balance := range account.Balances {
			result = append(result, model.AccountBalance{
				AddressNumber: number,
				TokenNumber:   int64(balance.Token),
				Amount:        decimal.New(balance.Amount, amountExp),
			})
		}
	}
	return result, nil
}

// customPayload returns the first DfTx payload among the outputs.
func customPayload(tx *btcjson.TxRawResult) (model.CustomType, []byte, error) {
	for _, vout := range tx.Vout {
		customType, payload, err := defichain.ParseCustomScriptHex(vout.ScriptPubKey.Hex)
		if errors.Is(err, defichain.ErrNotCustomTransaction) {
			continue
		}
		if err != nil {
			return model.CustomTypeNone, nil, fmt.Errorf("output %d: %w", vout.N, err)
		}
		return customType, payload, nil
	}
	return model.CustomTypeNone, nil, defichain.ErrNotCustomTransaction
}

// sumBalances totals the per-token amounts credited across accounts, ordered by token.
func sumBalances(accounts []defichain.Account) []defichain.Balance {
	totals := make(map[uint32]int64)
	for _, account := range accounts {
		for _, balance := range account.Balances {
			totals[balance.Token] += balance.Amount
		}
	}

	result := make([]defichain.Balance, 0, len(totals))
	for token, amount := range totals {
		result = append(result, defichain.Balance{Token: token, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Token < result[j].Token })
	return result
}
