// Package config declares the recognized runtime options and their startup
// validation.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalid marks a fatal configuration error; the process must not start.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every recognized option. Endpoints map names to JSON-RPC URLs
// and the set is fixed for the process lifetime.
type Config struct {
	ExpectedBlockTime      time.Duration     `long:"expected-block-time" env:"STREAMER_EXPECTED_BLOCK_TIME" description:"informational expected block interval" default:"12s"`
	MaxBlockProcessingTime time.Duration     `long:"max-block-processing-time" env:"STREAMER_MAX_BLOCK_PROCESSING_TIME" description:"per-block fetch latency budget" default:"5s"`
	MaxAvgResponseTime     float64           `long:"max-avg-response-time" env:"STREAMER_MAX_AVG_RESPONSE_TIME" description:"rolling average latency threshold in seconds" default:"2.0"`
	ErrorThreshold         int               `long:"error-threshold" env:"STREAMER_ERROR_THRESHOLD" description:"error count before a forced switch" default:"3"`
	MinSwitchInterval      time.Duration     `long:"min-switch-interval" env:"STREAMER_MIN_SWITCH_INTERVAL" description:"cooldown between endpoint switches" default:"30s"`
	MaxMeasurements        int               `long:"max-measurements" env:"STREAMER_MAX_MEASUREMENTS" description:"latency window size" default:"10"`
	ProbeTimeout           time.Duration     `long:"probe-timeout" env:"STREAMER_PROBE_TIMEOUT" description:"health probe timeout" default:"5s"`
	PollInterval           time.Duration     `long:"poll-interval" env:"STREAMER_POLL_INTERVAL" description:"sleep between polling iterations" default:"500ms"`
	RecoverySleep          time.Duration     `long:"recovery-sleep" env:"STREAMER_RECOVERY_SLEEP" description:"backoff after a failed iteration" default:"2s"`
	RPCTimeout             time.Duration     `long:"rpc-timeout" env:"STREAMER_RPC_TIMEOUT" description:"HTTP timeout for JSON-RPC requests" default:"30s"`
	DefaultEndpoint        string            `long:"default-endpoint" env:"STREAMER_DEFAULT_ENDPOINT" description:"startup active endpoint name"`
	Endpoints              map[string]string `long:"endpoint" env:"STREAMER_ENDPOINTS" env-delim:"," description:"endpoint as name:url, repeatable"`
	Chain                  string            `long:"chain" env:"STREAMER_CHAIN" description:"chain label for logs and metrics" default:"base-mainnet"`
	MetricsAddr            string            `long:"metrics-addr" env:"STREAMER_METRICS_ADDR" description:"metrics and health listen address" default:":9090"`
	Dev                    bool              `long:"dev" env:"STREAMER_DEV" description:"verbose development logging"`
}

// Validate applies the startup checks. Any error here is fatal.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("%w: no endpoints configured", ErrInvalid)
	}
	if c.DefaultEndpoint == "" {
		return fmt.Errorf("%w: default endpoint is required", ErrInvalid)
	}
	if _, ok := c.Endpoints[c.DefaultEndpoint]; !ok {
		return fmt.Errorf("%w: default endpoint %q not present in the endpoint set", ErrInvalid, c.DefaultEndpoint)
	}
	for _, name := range c.EndpointOrder() {
		if c.Endpoints[name] == "" {
			return fmt.Errorf("%w: endpoint %q is missing its URL", ErrInvalid, name)
		}
	}
	return nil
}

// EndpointOrder returns the fixed endpoint ordering used for selection
// tie-breaks: sorted by name, never map iteration order.
func (c *Config) EndpointOrder() []string {
	names := make([]string, 0, len(c.Endpoints))
	for name := range c.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
