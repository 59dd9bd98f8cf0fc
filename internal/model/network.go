// Package model defines domain models for the transaction checker.
package model

import (
	"fmt"
	"strings"
)

// Network names a chain network; every network owns its own schema set.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Stagnet Network = "stagnet"
)

// ParseNetwork validates a network name.
func ParseNetwork(value string) (Network, error) {
	switch Network(strings.ToLower(strings.TrimSpace(value))) {
	case Mainnet:
		return Mainnet, nil
	case Testnet:
		return Testnet, nil
	case Stagnet:
		return Stagnet, nil
	default:
		return "", fmt.Errorf("unsupported network %q", value)
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (n *Network) UnmarshalFlag(value string) error {
	parsed, err := ParseNetwork(value)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Schemas is the set of relational schema names used by one network.
type Schemas struct {
	// Chain holds block, transaction, address and reservation tables.
	Chain string
	// Custom holds custom_type and the materialized custom transaction tables.
	Custom string
}

// SchemaFor resolves the schema names of a network.
func SchemaFor(network Network) (Schemas, error) {
	switch network {
	case Mainnet:
		return Schemas{Chain: "public", Custom: "mainnet_custom"}, nil
	case Testnet:
		return Schemas{Chain: "testnet", Custom: "testnet_custom"}, nil
	case Stagnet:
		return Schemas{Chain: "stagnet", Custom: "stagnet_custom"}, nil
	default:
		return Schemas{}, fmt.Errorf("no schema for network %q", network)
	}
}
