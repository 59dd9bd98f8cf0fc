// Package defichain talks to a DeFiChain node and decodes custom transactions.
package defichain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/transactionchecker/internal/model"
)

// ParamsFor returns the address encoding parameters of a network.
// Only the fields used to render addresses differ from the bitcoin base params.
func ParamsFor(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet:
		params := chaincfg.MainNetParams
		params.Name = "defichain-mainnet"
		params.Bech32HRPSegwit = "df"
		params.PubKeyHashAddrID = 0x12
		params.ScriptHashAddrID = 0x5a
		return &params, nil
	case model.Testnet, model.Stagnet:
		params := chaincfg.TestNet3Params
		params.Name = "defichain-" + string(network)
		params.Bech32HRPSegwit = "tf"
		params.PubKeyHashAddrID = 0x0f
		params.ScriptHashAddrID = 0x80
		return &params, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
