package stream

import (
	"context"
	"time"

	"github.com/blockpulse/hotswap-streamer/internal/failover"
	"github.com/blockpulse/hotswap-streamer/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// FailoverController supplies the active endpoint and accepts failure
	// reports from the streaming loop.
	FailoverController interface {
		Active() failover.Provider
		Switch(ctx context.Context, reason string) failover.Outcome
		ReportPerformanceIssue(ctx context.Context, kind failover.IssueKind, value float64)
	}

	// Emitter receives one record per confirmed block.
	Emitter interface {
		Emit(ctx context.Context, record model.ConfirmedBlock) error
	}

	// StreamerMetrics tracks the streaming loop.
	StreamerMetrics interface {
		ObserveBatch(confirmed int, started time.Time)
		ObserveBlockConfirmed(number uint64, fetchSeconds float64)
		ObserveValidationFailure(reason string)
	}
)
