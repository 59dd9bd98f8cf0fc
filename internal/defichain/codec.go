package defichain

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/transactionchecker/pkg/safe"
)

const maxScriptSize = 10_000

// Balance is an amount of one token in satoshis.
type Balance struct {
	Token  uint32
	Amount int64
}

// Account is a script with the balances credited to or debited from it.
type Account struct {
	Script   []byte
	Balances []Balance
}

// AccountToAccount moves balances from one script to many.
type AccountToAccount struct {
	From []byte
	To   []Account
}

// AnyAccountsToAccounts moves balances from many scripts to many.
type AnyAccountsToAccounts struct {
	From []Account
	To   []Account
}

// DecodeAccountToAccount decodes a 'B' payload.
func DecodeAccountToAccount(payload []byte) (AccountToAccount, error) {
	r := bytes.NewReader(payload)

	from, err := readScript(r)
	if err != nil {
		return AccountToAccount{}, fmt.Errorf("read from: %w", err)
	}
	to, err := readAccounts(r)
	if err != nil {
		return AccountToAccount{}, fmt.Errorf("read to: %w", err)
	}
	if r.Len() != 0 {
		return AccountToAccount{}, fmt.Errorf("excess %d bytes", r.Len())
	}
	return AccountToAccount{From: from, To: to}, nil
}

// DecodeAnyAccountsToAccounts decodes an 'a' payload.
func DecodeAnyAccountsToAccounts(payload []byte) (AnyAccountsToAccounts, error) {
	r := bytes.NewReader(payload)

	from, err := readAccounts(r)
	if err != nil {
		return AnyAccountsToAccounts{}, fmt.Errorf("read from: %w", err)
	}
	to, err := readAccounts(r)
	if err != nil {
		return AnyAccountsToAccounts{}, fmt.Errorf("read to: %w", err)
	}
	if r.Len() != 0 {
		return AnyAccountsToAccounts{}, fmt.Errorf("excess %d bytes", r.Len())
	}
	return AnyAccountsToAccounts{From: from, To: to}, nil
}

func readScript(r *bytes.Reader) ([]byte, error) {
	return wire.ReadVarBytes(r, 0, maxScriptSize, "script")
}

// readCount reads a compact size and rejects counts larger than the remaining payload.
func readCount(r *bytes.Reader) (int, error) {
	n, err := wire.ReadVarInt(r, 0)
	if err != nil {
		return 0, err
	}
	if n > uint64(r.Len()) {
		return 0, fmt.Errorf("count %d exceeds remaining %d bytes", n, r.Len())
	}
	return safe.Int(n)
}

func readAccounts(r *bytes.Reader) ([]Account, error) {
	count, err := readCount(r)
	if err != nil {
		return nil, fmt.Errorf("read account count: %w", err)
	}

	accounts := make([]Account, 0, count)
	for i := 0; i < count; i++ {
		script, err := readScript(r)
		if err != nil {
			return nil, fmt.Errorf("account %d script: %w", i, err)
		}
		balances, err := readBalances(r)
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, err)
		}
		accounts = append(accounts, Account{Script: script, Balances: balances})
	}
	return accounts, nil
}

func readBalances(r *bytes.Reader) ([]Balance, error) {
	count, err := readCount(r)
	if err != nil {
		return nil, fmt.Errorf("read balance count: %w", err)
	}

	balances := make([]Balance, 0, count)
	for i := 0; i < count; i++ {
		var (
			token  uint32
			amount int64
		)
		if err := binary.Read(r, binary.LittleEndian, &token); err != nil {
			return nil, fmt.Errorf("balance %d token: %w", i, err)
		}
		if err := binary.Read(r, binary.LittleEndian, &amount); err != nil {
			return nil, fmt.Errorf("balance %d amount: %w", i, err)
		}
		if _, err := safe.NonNegativeInt64(amount); err != nil {
			return nil, fmt.Errorf("balance %d amount: %w", i, err)
		}
		balances = append(balances, Balance{Token: token, Amount: amount})
	}
	return balances, nil
}
