package failover

import (
	"context"

	"github.com/blockpulse/hotswap-streamer/internal/health"
	"github.com/blockpulse/hotswap-streamer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider is a configured node endpoint usable for streaming.
	Provider interface {
		Name() model.EndpointName
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, number uint64) (model.Block, error)
	}

	// HealthMonitor supplies the per-endpoint statistics behind switch
	// decisions. The Record methods report whether a threshold tripped.
	HealthMonitor interface {
		RecordLatency(name model.EndpointName, seconds float64) bool
		RecordError(name model.EndpointName) bool
		ErrorCount(name model.EndpointName) int
		IsHealthy(ctx context.Context, probe health.Prober) bool
	}

	// ControllerMetrics tracks switch attempts and reported issues.
	ControllerMetrics interface {
		ObserveSwitch(outcome Outcome)
		ObserveIssue(kind IssueKind)
	}
)

// Outcome describes how a switch attempt was resolved.
type Outcome string

const (
	// OutcomePerformed means the active endpoint changed.
	OutcomePerformed Outcome = "performed"
	// OutcomeSuppressedCooldown means the attempt fell inside the cooldown window.
	OutcomeSuppressedCooldown Outcome = "suppressed_cooldown"
	// OutcomeNoCandidate means no healthy alternative endpoint existed.
	OutcomeNoCandidate Outcome = "no_candidate"
)

// IssueKind classifies a reported performance issue.
type IssueKind string

const (
	// IssueSlowProcessing is an elevated per-block fetch time, in seconds.
	IssueSlowProcessing IssueKind = "slow_processing"
	// IssueError is a failed call against the active endpoint.
	IssueError IssueKind = "error"
)
