// Package ethereum implements the JSON-RPC provider client for EVM nodes.
package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/blockpulse/hotswap-streamer/internal/chain"
	"github.com/blockpulse/hotswap-streamer/internal/model"
	"github.com/blockpulse/hotswap-streamer/pkg/hexutil"
)

// Client talks JSON-RPC to a single configured node endpoint. It imposes no
// retries, pooling, or caching beyond the HTTP client's request timeout.
type Client struct {
	name       model.EndpointName
	url        string
	httpClient *http.Client
}

// NewClient builds a Client for one configured endpoint.
func NewClient(name model.EndpointName, url string, timeout time.Duration) *Client {
	return &Client{
		name: name,
		url:  url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the configured endpoint name.
func (c *Client) Name() model.EndpointName { return c.name }

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// LatestHeight returns the node's current chain head number.
func (c *Client) LatestHeight(ctx context.Context) (uint64, error) {
	const op = "eth_blockNumber"

	var quantity string
	if err := c.call(ctx, op, nil, &quantity); err != nil {
		return 0, err
	}
	height, err := hexutil.ParseQuantity(quantity)
	if err != nil {
		return 0, &chain.TransportError{Endpoint: c.name, Op: op, Err: err}
	}
	return height, nil
}

// FetchBlock retrieves the block at the given number and validates it once at
// this boundary; callers never re-check field presence.
func (c *Client) FetchBlock(ctx context.Context, number uint64) (model.Block, error) {
	const op = "eth_getBlockByNumber"

	var payload blockPayload
	params := []any{hexutil.EncodeQuantity(number), false}
	if err := c.call(ctx, op, params, &payload); err != nil {
		return model.Block{}, err
	}
	return convertBlock(number, payload)
}

func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method, Params: params, ID: 1})
	if err != nil {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return &chain.TransportError{
			Endpoint: c.name,
			Op:       method,
			Err:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: fmt.Errorf("decode response: %w", err)}
	}
	if rpcResp.Error != nil {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: rpcResp.Error}
	}
	if len(rpcResp.Result) == 0 || bytes.Equal(rpcResp.Result, []byte("null")) {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: errors.New("null result")}
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return &chain.TransportError{Endpoint: c.name, Op: method, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}
