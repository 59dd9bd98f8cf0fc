package defichain

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// DataProvider exposes the node operations the pipelines consume.
type DataProvider struct {
	caller Caller
	params *chaincfg.Params
}

// NewDataProvider builds a provider for the given network.
func NewDataProvider(caller Caller, network model.Network) (*DataProvider, error) {
	params, err := ParamsFor(network)
	if err != nil {
		return nil, err
	}
	return &DataProvider{caller: caller, params: params}, nil
}

// Params returns the address parameters of the provider's network.
func (p *DataProvider) Params() *chaincfg.Params {
	return p.params
}

// IsCustomTransactionApplied reports whether the node applied txid as a custom transaction at the block.
func (p *DataProvider) IsCustomTransactionApplied(ctx context.Context, txid string, blockNumber int64) (bool, error) {
	var applied bool
	if err := p.caller.Call(ctx, "isappliedcustomtx", &applied, txid, blockNumber); err != nil {
		return false, fmt.Errorf("is applied custom tx %s: %w", txid, err)
	}
	return applied, nil
}

// GetTransaction fetches a verbose transaction from the given block.
func (p *DataProvider) GetTransaction(ctx context.Context, txid, blockHash string) (*btcjson.TxRawResult, error) {
	var tx btcjson.TxRawResult
	if err := p.caller.Call(ctx, "getrawtransaction", &tx, txid, true, blockHash); err != nil {
		return nil, fmt.Errorf("get transaction %s: %w", txid, err)
	}
	return &tx, nil
}

// ClassifyOutput returns the custom type of an output script.
func (p *DataProvider) ClassifyOutput(scriptHex string) (model.CustomType, error) {
	return ClassifyOutput(scriptHex)
}

// DecodeRawTransaction decodes a serialized transaction on the node.
func (p *DataProvider) DecodeRawTransaction(ctx context.Context, rawHex string) (*btcjson.TxRawDecodeResult, error) {
	var tx btcjson.TxRawDecodeResult
	if err := p.caller.Call(ctx, "decoderawtransaction", &tx, rawHex); err != nil {
		return nil, fmt.Errorf("decode raw transaction: %w", err)
	}
	return &tx, nil
}

// VerifySignature checks a message signature against an address.
func (p *DataProvider) VerifySignature(ctx context.Context, message, address, signature string) (bool, error) {
	var valid bool
	if err := p.caller.Call(ctx, "verifymessage", &valid, address, signature, message); err != nil {
		return false, fmt.Errorf("verify message for %s: %w", address, err)
	}
	return valid, nil
}

// OutputAddresses returns the addresses an output pays to.
func (p *DataProvider) OutputAddresses(vout btcjson.Vout) ([]string, error) {
	return OutputAddresses(vout, p.params)
}

// ScriptAddress renders an account script as an address.
func (p *DataProvider) ScriptAddress(script []byte) string {
	return ScriptAddress(script, p.params)
}
