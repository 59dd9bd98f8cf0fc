package defichain

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// Encoders mirroring the node serialization, used to build fixtures.

func encodeAccounts(t *testing.T, buf *bytes.Buffer, accounts []Account) {
	t.Helper()
	if err := wire.WriteVarInt(buf, 0, uint64(len(accounts))); err != nil {
		t.Fatalf("write account count: %v", err)
	}
	for _, account := range accounts {
		if err := wire.WriteVarBytes(buf, 0, account.Script); err != nil {
			t.Fatalf("write script: %v", err)
		}
		if err := wire.WriteVarInt(buf, 0, uint64(len(account.Balances))); err != nil {
			t.Fatalf("write balance count: %v", err)
		}
		for _, balance := range account.Balances {
			_ = binary.Write(buf, binary.LittleEndian, balance.Token)
			_ = binary.Write(buf, binary.LittleEndian, balance.Amount)
		}
	}
}

func encodeAccountToAccount(t *testing.T, msg AccountToAccount) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := wire.WriteVarBytes(&buf, 0, msg.From); err != nil {
		t.Fatalf("write from: %v", err)
	}
	encodeAccounts(t, &buf, msg.To)
	return buf.Bytes()
}

func encodeAnyAccountsToAccounts(t *testing.T, msg AnyAccountsToAccounts) []byte {
	t.Helper()
	var buf bytes.Buffer
	encodeAccounts(t, &buf, msg.From)
	encodeAccounts(t, &buf, msg.To)
	return buf.Bytes()
}

func customScript(t *testing.T, customType model.CustomType, payload []byte) []byte {
	t.Helper()
	data := append([]byte(dfTxMarker), byte(customType))
	data = append(data, payload...)
	script, err := txscript.NewScriptBuilder().AddOp(txscript.OP_RETURN).AddFullData(data).Script()
	if err != nil {
		t.Fatalf("build script: %v", err)
	}
	return script
}
