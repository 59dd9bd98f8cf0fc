package defichain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/ratelimit"
)

// RPCClient rate limits and instruments raw node calls.
type RPCClient struct {
	client     RawRequester
	limiter    ratelimit.Limiter
	rpcMetrics RPCMetrics
}

var _ Caller = (*RPCClient)(nil)

// NewRPCClient constructs an instrumented RPC client; rps <= 0 disables rate limiting.
func NewRPCClient(client RawRequester, rps int, rpcMetrics RPCMetrics) *RPCClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &RPCClient{
		client:     client,
		limiter:    limiter,
		rpcMetrics: rpcMetrics,
	}
}

// Call sends method with params and unmarshals the response into result when it is non-nil.
func (c *RPCClient) Call(ctx context.Context, method string, result any, params ...any) (err error) {
	started := time.Now()
	defer func() {
		c.rpcMetrics.Observe(method, err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	raw := make([]json.RawMessage, 0, len(params))
	for i, param := range params {
		encoded, marshalErr := json.Marshal(param)
		if marshalErr != nil {
			err = fmt.Errorf("%s: marshal param %d: %w", method, i, marshalErr)
			return err
		}
		raw = append(raw, encoded)
	}

	c.limiter.Take()
	resp, err := c.client.RawRequest(method, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if result == nil {
		return nil
	}
	if err = json.Unmarshal(resp, result); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	return nil
}
