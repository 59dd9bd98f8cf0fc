package defichain

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"encoding/json"
	"time"
)

type (
	// RawRequester issues raw JSON-RPC calls; *rpcclient.Client satisfies it.
	RawRequester interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// Caller performs a node call and decodes its result.
	Caller interface {
		Call(ctx context.Context, method string, result any, params ...any) error
	}
)
