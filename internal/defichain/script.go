package defichain

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// dfTxMarker prefixes the OP_RETURN push of every custom transaction.
const dfTxMarker = "DfTx"

// ErrNotCustomTransaction is returned for scripts without a DfTx payload.
var ErrNotCustomTransaction = errors.New("not a custom transaction")

// ParseCustomScript splits an OP_RETURN DfTx script into its type byte and payload.
func ParseCustomScript(script []byte) (model.CustomType, []byte, error) {
	tokenizer := txscript.MakeScriptTokenizer(0, script)
	if !tokenizer.Next() || tokenizer.Opcode() != txscript.OP_RETURN {
		return model.CustomTypeNone, nil, ErrNotCustomTransaction
	}
	if !tokenizer.Next() {
		if err := tokenizer.Err(); err != nil {
			return model.CustomTypeNone, nil, fmt.Errorf("tokenize script: %w", err)
		}
		return model.CustomTypeNone, nil, ErrNotCustomTransaction
	}

	data := tokenizer.Data()
	if len(data) <= len(dfTxMarker) || string(data[:len(dfTxMarker)]) != dfTxMarker {
		return model.CustomTypeNone, nil, ErrNotCustomTransaction
	}
	return model.CustomType(data[len(dfTxMarker)]), data[len(dfTxMarker)+1:], nil
}

// ParseCustomScriptHex is ParseCustomScript for hex-encoded scripts.
func ParseCustomScriptHex(scriptHex string) (model.CustomType, []byte, error) {
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return model.CustomTypeNone, nil, fmt.Errorf("decode script hex: %w", err)
	}
	return ParseCustomScript(script)
}

// ClassifyOutput returns the custom type carried by an output script, or CustomTypeNone.
func ClassifyOutput(scriptHex string) (model.CustomType, error) {
	customType, _, err := ParseCustomScriptHex(scriptHex)
	if errors.Is(err, ErrNotCustomTransaction) {
		return model.CustomTypeNone, nil
	}
	if err != nil {
		return model.CustomTypeNone, err
	}
	return customType, nil
}

// scriptKeyPrefix marks account scripts that have no address form of their own.
const scriptKeyPrefix = "script:"

// addressClasses are the script classes whose address encodes the whole script.
var addressClasses = map[txscript.ScriptClass]bool{
	txscript.PubKeyHashTy:          true,
	txscript.ScriptHashTy:          true,
	txscript.WitnessV0PubKeyHashTy: true,
	txscript.WitnessV0ScriptHashTy: true,
	txscript.WitnessV1TaprootTy:    true,
}

// ScriptAddress renders an account script as its address. Scripts of any other
// class, P2PK and multisig included, are keyed as "script:" plus their hex so that
// distinct scripts never share a key.
func ScriptAddress(script []byte, params *chaincfg.Params) string {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
	if err != nil || !addressClasses[class] || len(addrs) != 1 {
		return scriptKeyPrefix + hex.EncodeToString(script)
	}
	return addrs[0].EncodeAddress()
}

// OutputAddresses extracts the addresses an output pays to.
func OutputAddresses(vout btcjson.Vout, params *chaincfg.Params) ([]string, error) {
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return append([]string(nil), vout.ScriptPubKey.Addresses...), nil
	}
	if vout.ScriptPubKey.Address != "" {
		return []string{vout.ScriptPubKey.Address}, nil
	}
	if vout.ScriptPubKey.Hex == "" {
		return nil, nil
	}

	script, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return nil, fmt.Errorf("decode script hex: %w", err)
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
	if err != nil {
		return nil, fmt.Errorf("extract addresses: %w", err)
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
