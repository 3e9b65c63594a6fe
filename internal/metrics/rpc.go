package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/blockpulse/hotswap-streamer/internal/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotswap",
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "Count of JSON-RPC requests per endpoint and operation.",
	}, []string{"chain", "endpoint", "operation", "status"})

	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hotswap",
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "Duration of JSON-RPC requests per endpoint and operation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "endpoint", "operation", "status"})
)

// RPC tracks metrics for JSON-RPC calls against one endpoint.
type RPC struct {
	chain    string
	endpoint string
}

// NewRPC constructs an RPC metrics observer for the endpoint.
func NewRPC(chain string, endpoint model.EndpointName) *RPC {
	if chain == "" {
		chain = "unknown"
	}
	return &RPC{chain: chain, endpoint: string(endpoint)}
}

// Observe records one RPC call outcome and duration.
func (m RPC) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rpcRequestsTotal.WithLabelValues(m.chain, m.endpoint, operation, status).Inc()
	rpcRequestDuration.WithLabelValues(m.chain, m.endpoint, operation, status).
		Observe(time.Since(started).Seconds())
}
