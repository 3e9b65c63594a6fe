// Package failover owns the active endpoint reference and the switch policy.
package failover

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blockpulse/hotswap-streamer/internal/model"
)

// Controller holds the single active endpoint and decides whether, when, and
// where to move the stream. The endpoint set is fixed at startup.
type Controller struct {
	logger  *zap.Logger
	health  HealthMonitor
	metrics ControllerMetrics

	// providers keeps the declared endpoint order; ties between candidates
	// with equal error counts resolve to the first-declared one.
	providers []Provider

	minSwitchInterval time.Duration
	now               func() time.Time

	mu             sync.Mutex
	active         Provider
	lastSwitchTime time.Time
}

// NewController wires the controller over the fixed endpoint set.
func NewController(
	providers []Provider,
	defaultName model.EndpointName,
	health HealthMonitor,
	metrics ControllerMetrics,
	minSwitchInterval time.Duration,
	logger *zap.Logger,
) (*Controller, error) {
	if len(providers) == 0 {
		return nil, errors.New("no endpoints configured")
	}
	if health == nil {
		return nil, errors.New("health monitor is required")
	}
	if metrics == nil {
		return nil, errors.New("controller metrics is required")
	}

	var active Provider
	for _, p := range providers {
		if p.Name() == defaultName {
			active = p
			break
		}
	}
	if active == nil {
		return nil, fmt.Errorf("default endpoint %q not configured", defaultName)
	}

	c := &Controller{
		logger:            logger,
		health:            health,
		metrics:           metrics,
		providers:         providers,
		minSwitchInterval: minSwitchInterval,
		now:               time.Now,
		active:            active,
	}
	c.lastSwitchTime = c.now()

	logger.Info("failover controller initialized",
		zap.String("active_endpoint", string(defaultName)),
		zap.Int("endpoints", len(providers)))
	return c, nil
}

// Active returns the endpoint currently serving fetches.
func (c *Controller) Active() Provider {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// ActiveName returns the name of the endpoint currently serving fetches.
func (c *Controller) ActiveName() model.EndpointName {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active.Name()
}

// Switch evaluates a failover request. It is a no-op inside the cooldown
// window or when no healthy alternative exists; staying on a degraded
// endpoint keeps ingestion alive rather than halting it.
func (c *Controller) Switch(ctx context.Context, reason string) Outcome {
	c.mu.Lock()
	now := c.now()
	since := now.Sub(c.lastSwitchTime)
	current := c.active.Name()
	c.mu.Unlock()

	if since < c.minSwitchInterval {
		c.logger.Info("switch suppressed: minimum interval not reached",
			zap.String("reason", reason),
			zap.Duration("since_last_switch", since),
			zap.Duration("min_switch_interval", c.minSwitchInterval))
		c.metrics.ObserveSwitch(OutcomeSuppressedCooldown)
		return OutcomeSuppressedCooldown
	}

	// Candidate probes are network round trips; Active() must stay
	// responsive while they run, so the lock is not held here.
	var winner Provider
	winnerErrors := 0
	for _, p := range c.providers {
		if p.Name() == current {
			continue
		}
		if !c.health.IsHealthy(ctx, p) {
			continue
		}
		errCount := c.health.ErrorCount(p.Name())
		if winner == nil || errCount < winnerErrors {
			winner = p
			winnerErrors = errCount
		}
	}

	if winner == nil {
		c.logger.Warn("no healthy alternative endpoints available",
			zap.String("active_endpoint", string(current)),
			zap.String("reason", reason))
		c.metrics.ObserveSwitch(OutcomeNoCandidate)
		return OutcomeNoCandidate
	}

	c.mu.Lock()
	now = c.now()
	if now.Sub(c.lastSwitchTime) < c.minSwitchInterval || c.active.Name() != current {
		since = now.Sub(c.lastSwitchTime)
		c.mu.Unlock()
		c.logger.Info("switch suppressed: superseded while probing",
			zap.String("reason", reason),
			zap.Duration("since_last_switch", since))
		c.metrics.ObserveSwitch(OutcomeSuppressedCooldown)
		return OutcomeSuppressedCooldown
	}
	c.active = winner
	c.lastSwitchTime = now
	c.mu.Unlock()

	c.logger.Warn("switched active endpoint",
		zap.String("from", string(current)),
		zap.String("to", string(winner.Name())),
		zap.String("reason", reason))
	c.metrics.ObserveSwitch(OutcomePerformed)
	return OutcomePerformed
}

// ReportPerformanceIssue feeds an observation about the active endpoint into
// the health monitor and escalates to a switch when a threshold trips. A
// single slow sample never forces a switch on its own.
func (c *Controller) ReportPerformanceIssue(ctx context.Context, kind IssueKind, value float64) {
	name := c.ActiveName()
	c.metrics.ObserveIssue(kind)

	switch kind {
	case IssueSlowProcessing:
		if c.health.RecordLatency(name, value) {
			c.Switch(ctx, fmt.Sprintf("high average response time on %s (last sample %.2fs)", name, value))
		}
	case IssueError:
		if c.health.RecordError(name) {
			c.Switch(ctx, fmt.Sprintf("error threshold reached on %s", name))
		}
	default:
		c.logger.Warn("unknown performance issue kind", zap.String("kind", string(kind)))
	}
}
