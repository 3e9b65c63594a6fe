// Package health tracks per-endpoint latency and error statistics.
package health

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blockpulse/hotswap-streamer/internal/model"
)

// The rolling average is meaningless on one or two samples.
const minSamplesForAverage = 3

const (
	defaultMaxMeasurements    = 10
	defaultMaxAvgResponseTime = 2.0
	defaultErrorThreshold     = 3
	defaultProbeTimeout       = 5 * time.Second
)

// Prober is the liveness surface of a provider endpoint.
type Prober interface {
	Name() model.EndpointName
	LatestHeight(ctx context.Context) (uint64, error)
}

// Config bounds the rolling statistics and the liveness probe.
type Config struct {
	MaxMeasurements    int
	MaxAvgResponseTime float64
	ErrorThreshold     int
	ProbeTimeout       time.Duration
}

type endpointStats struct {
	latencies []float64
	errors    int
}

// Monitor keeps rolling statistics for every configured endpoint. Reports may
// arrive from a path distinct from the ingestion loop, so all state is
// mutex-guarded.
type Monitor struct {
	logger *zap.Logger
	cfg    Config

	mu    sync.Mutex
	stats map[model.EndpointName]*endpointStats
}

// NewMonitor creates a stats slot for each endpoint name. Slots live for the
// whole process; they are never removed.
func NewMonitor(names []model.EndpointName, cfg Config, logger *zap.Logger) *Monitor {
	if cfg.MaxMeasurements <= 0 {
		cfg.MaxMeasurements = defaultMaxMeasurements
	}
	if cfg.MaxAvgResponseTime <= 0 {
		cfg.MaxAvgResponseTime = defaultMaxAvgResponseTime
	}
	if cfg.ErrorThreshold <= 0 {
		cfg.ErrorThreshold = defaultErrorThreshold
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}

	stats := make(map[model.EndpointName]*endpointStats, len(names))
	for _, name := range names {
		stats[name] = &endpointStats{latencies: make([]float64, 0, cfg.MaxMeasurements)}
	}
	return &Monitor{
		logger: logger,
		cfg:    cfg,
		stats:  stats,
	}
}

// RecordLatency appends a latency sample for the endpoint, keeping only the
// MaxMeasurements most recent entries. It reports whether the rolling average
// crossed MaxAvgResponseTime.
func (m *Monitor) RecordLatency(name model.EndpointName, seconds float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.stats[name]
	if !ok {
		return false
	}

	if len(st.latencies) >= m.cfg.MaxMeasurements {
		copy(st.latencies, st.latencies[1:])
		st.latencies = st.latencies[:len(st.latencies)-1]
	}
	st.latencies = append(st.latencies, seconds)

	if len(st.latencies) < minSamplesForAverage {
		return false
	}
	avg := mean(st.latencies)
	if avg <= m.cfg.MaxAvgResponseTime {
		return false
	}
	m.logger.Warn("endpoint rolling latency above threshold",
		zap.String("endpoint", string(name)),
		zap.Float64("avg_seconds", avg),
		zap.Float64("max_avg_seconds", m.cfg.MaxAvgResponseTime))
	return true
}

// RecordError bumps the endpoint's cumulative error count, reporting whether
// it reached ErrorThreshold. The count is never reset while the process runs.
func (m *Monitor) RecordError(name model.EndpointName) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.stats[name]
	if !ok {
		return false
	}

	st.errors++
	if st.errors < m.cfg.ErrorThreshold {
		return false
	}
	m.logger.Warn("endpoint reached error threshold",
		zap.String("endpoint", string(name)),
		zap.Int("errors", st.errors),
		zap.Int("threshold", m.cfg.ErrorThreshold))
	return true
}

// ErrorCount returns the endpoint's cumulative error count.
func (m *Monitor) ErrorCount(name model.EndpointName) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	st, ok := m.stats[name]
	if !ok {
		return 0
	}
	return st.errors
}

// IsHealthy probes the endpoint by asking for its latest height, bounded by
// ProbeTimeout. Any failure kind counts as unhealthy.
func (m *Monitor) IsHealthy(ctx context.Context, probe Prober) bool {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
	defer cancel()

	if _, err := probe.LatestHeight(ctx); err != nil {
		m.logger.Warn("endpoint health probe failed",
			zap.String("endpoint", string(probe.Name())),
			zap.Error(err))
		return false
	}
	return true
}

func mean(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s
	}
	return sum / float64(len(samples))
}
