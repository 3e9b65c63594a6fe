package ethereum

import (
	"context"
	"time"

	"github.com/blockpulse/hotswap-streamer/internal/model"
)

type (
	// RPCMetrics records metrics for JSON-RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps a Client with metrics instrumentation.
type ObservedClient struct {
	client     *Client
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented client.
func NewObservedClient(client *Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// Name returns the configured endpoint name.
func (o *ObservedClient) Name() model.EndpointName { return o.client.Name() }

// LatestHeight returns the node's current chain head number.
func (o *ObservedClient) LatestHeight(ctx context.Context) (height uint64, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("latest_height", err, started)
	}()
	return o.client.LatestHeight(ctx)
}

// FetchBlock retrieves and validates the block at the given number.
func (o *ObservedClient) FetchBlock(ctx context.Context, number uint64) (block model.Block, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("fetch_block", err, started)
	}()
	return o.client.FetchBlock(ctx, number)
}
