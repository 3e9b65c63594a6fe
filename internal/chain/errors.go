// Package chain defines types shared between the provider boundary and the
// streaming components.
package chain

import (
	"errors"
	"fmt"

	"github.com/blockpulse/hotswap-streamer/internal/model"
)

// ErrMissingField marks a block payload field that the node did not return.
var ErrMissingField = errors.New("missing required field")

// TransportError wraps a failed RPC exchange with an endpoint. Any transport
// failure is treated uniformly as a trigger for endpoint evaluation.
type TransportError struct {
	Endpoint model.EndpointName
	Op       string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s from endpoint %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ValidationError reports a block rejected at the provider boundary.
type ValidationError struct {
	Number uint64
	Field  string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("block %d field %q: %v", e.Number, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
