package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/blockpulse/hotswap-streamer/internal/failover"
)

var (
	failoverSwitchAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotswap",
		Subsystem: "failover",
		Name:      "switch_attempts_total",
		Help:      "Count of switch attempts by outcome.",
	}, []string{"chain", "outcome"})

	failoverIssuesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hotswap",
		Subsystem: "failover",
		Name:      "performance_issues_total",
		Help:      "Count of performance issues reported against the active endpoint.",
	}, []string{"chain", "kind"})
)

// Failover tracks switch decisions and reported issues.
type Failover struct {
	chain string
}

// NewFailover constructs a Failover metrics observer.
func NewFailover(chain string) *Failover {
	if chain == "" {
		chain = "unknown"
	}
	return &Failover{chain: chain}
}

// ObserveSwitch records a switch attempt outcome.
func (m Failover) ObserveSwitch(outcome failover.Outcome) {
	failoverSwitchAttemptsTotal.WithLabelValues(m.chain, string(outcome)).Inc()
}

// ObserveIssue records a reported performance issue.
func (m Failover) ObserveIssue(kind failover.IssueKind) {
	failoverIssuesTotal.WithLabelValues(m.chain, string(kind)).Inc()
}
