// Package metrics exposes Prometheus instrumentation for the streamer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamerBlocksConfirmedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotswap",
		Subsystem: "streamer",
		Name:      "blocks_confirmed_total",
		Help:      "Count of blocks that passed validation and advanced the cursor.",
	}, []string{"chain"})

	streamerCursorHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "hotswap",
		Subsystem: "streamer",
		Name:      "cursor_height",
		Help:      "Highest confirmed contiguous block number.",
	}, []string{"chain"})

	streamerFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hotswap",
		Subsystem: "streamer",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of per-block fetches that ended in confirmation.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain"})

	streamerValidationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotswap",
		Subsystem: "streamer",
		Name:      "validation_failures_total",
		Help:      "Count of blocks rejected by field or hash-chain validation.",
	}, []string{"chain", "reason"})

	streamerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hotswap",
		Subsystem: "streamer",
		Name:      "batch_duration_seconds",
		Help:      "Duration of one batch walk from cursor to observed tip.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain"})

	streamerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "hotswap",
		Subsystem: "streamer",
		Name:      "batch_confirmed_blocks",
		Help:      "Number of blocks confirmed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"chain"})
)

// Streamer tracks metrics for the block streaming loop.
type Streamer struct {
	chain string
}

// NewStreamer constructs a Streamer metrics observer.
func NewStreamer(chain string) *Streamer {
	if chain == "" {
		chain = "unknown"
	}
	return &Streamer{chain: chain}
}

// ObserveBatch records one batch walk.
func (m Streamer) ObserveBatch(confirmed int, started time.Time) {
	streamerBatchDuration.WithLabelValues(m.chain).Observe(time.Since(started).Seconds())
	streamerBatchSize.WithLabelValues(m.chain).Observe(float64(confirmed))
}

// ObserveBlockConfirmed records a confirmed block and its fetch duration.
func (m Streamer) ObserveBlockConfirmed(number uint64, fetchSeconds float64) {
	streamerBlocksConfirmedTotal.WithLabelValues(m.chain).Inc()
	streamerCursorHeight.WithLabelValues(m.chain).Set(float64(number))
	streamerFetchDuration.WithLabelValues(m.chain).Observe(fetchSeconds)
}

// ObserveValidationFailure records a rejected block by reason.
func (m Streamer) ObserveValidationFailure(reason string) {
	streamerValidationFailuresTotal.WithLabelValues(m.chain, reason).Inc()
}
