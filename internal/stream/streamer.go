// Package stream drives sequential block ingestion with hash-chain validation.
package stream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/blockpulse/hotswap-streamer/internal/chain"
	"github.com/blockpulse/hotswap-streamer/internal/clock"
	"github.com/blockpulse/hotswap-streamer/internal/failover"
	"github.com/blockpulse/hotswap-streamer/internal/model"
	"github.com/blockpulse/hotswap-streamer/pkg/hexutil"
)

const (
	defaultPollInterval           = 500 * time.Millisecond
	defaultRecoverySleep          = 2 * time.Second
	defaultMaxBlockProcessingTime = 5 * time.Second
)

// Config bounds the polling loop.
type Config struct {
	MaxBlockProcessingTime time.Duration
	PollInterval           time.Duration
	RecoverySleep          time.Duration
}

type batchResult int

const (
	batchCompleted batchResult = iota
	batchAbortedValidation
	batchAbortedTransport
	batchCanceled
)

// Streamer walks the chain forward strictly sequentially, confirming each
// block against the cursor before advancing. Blocks are never fetched out of
// order or in parallel.
type Streamer struct {
	logger   *zap.Logger
	failover FailoverController
	emitter  Emitter
	metrics  StreamerMetrics

	cursor Cursor

	maxBlockProcessingTime time.Duration
	pollInterval           time.Duration
	recoverySleep          time.Duration
	sleep                  func(context.Context, time.Duration) error
}

// New builds a Streamer over the failover controller and record emitter.
func New(controller FailoverController, emitter Emitter, metrics StreamerMetrics, cfg Config, logger *zap.Logger) (*Streamer, error) {
	if controller == nil {
		return nil, errors.New("failover controller is required")
	}
	if emitter == nil {
		return nil, errors.New("emitter is required")
	}
	if metrics == nil {
		return nil, errors.New("streamer metrics is required")
	}
	if cfg.MaxBlockProcessingTime <= 0 {
		cfg.MaxBlockProcessingTime = defaultMaxBlockProcessingTime
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.RecoverySleep <= 0 {
		cfg.RecoverySleep = defaultRecoverySleep
	}

	return &Streamer{
		logger:                 logger,
		failover:               controller,
		emitter:                emitter,
		metrics:                metrics,
		maxBlockProcessingTime: cfg.MaxBlockProcessingTime,
		pollInterval:           cfg.PollInterval,
		recoverySleep:          cfg.RecoverySleep,
		sleep:                  clock.SleepWithContext,
	}, nil
}

// Run executes the polling loop until the context is canceled. Cancellation
// is observed at iteration and block boundaries; an in-flight fetch finishes
// first. Endpoint-side failures never escape this loop.
func (s *Streamer) Run(ctx context.Context) error {
	s.logger.Info("block streaming started")
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Info("block streaming stopped")
			return err
		}
		if err := s.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			s.failover.Switch(ctx, fmt.Sprintf("streaming iteration failed: %v", err))
			s.logger.Warn("iteration failed, backing off",
				zap.Error(err),
				zap.Duration("sleep", s.recoverySleep))
			if sleepErr := s.sleep(ctx, s.recoverySleep); sleepErr != nil {
				s.logger.Info("block streaming stopped")
				return sleepErr
			}
		}
	}
}

func (s *Streamer) run(ctx context.Context) error {
	active := s.failover.Active()

	latest, err := active.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("latest height from %s: %w", active.Name(), err)
	}

	if !s.cursor.Seeded() {
		s.cursor.Seed(latest)
		s.logger.Info("cursor seeded at observed tip",
			zap.Uint64("latest", latest),
			zap.Uint64("next", s.cursor.Next()))
	}

	switch s.processBatch(ctx, active, latest) {
	case batchCanceled:
		return ctx.Err()
	case batchAbortedTransport:
		// Longer backoff before retrying the unchanged cursor against
		// whichever endpoint is active now.
		return s.sleep(ctx, s.recoverySleep)
	default:
		return s.sleep(ctx, s.pollInterval)
	}
}

func (s *Streamer) processBatch(ctx context.Context, active failover.Provider, latest uint64) batchResult {
	started := time.Now()
	confirmed := 0
	defer func() {
		s.metrics.ObserveBatch(confirmed, started)
	}()

	for number := s.cursor.Next(); number <= latest; number++ {
		fetchStarted := time.Now()
		block, err := active.FetchBlock(ctx, number)
		elapsed := time.Since(fetchStarted)

		if err != nil {
			if ctx.Err() != nil {
				return batchCanceled
			}

			var vErr *chain.ValidationError
			if errors.As(err, &vErr) {
				s.metrics.ObserveValidationFailure("missing_field")
				s.logger.Warn("block validation failed",
					zap.Uint64("number", number),
					zap.String("endpoint", string(active.Name())),
					zap.Error(err))
				s.failover.Switch(ctx, fmt.Sprintf("block %d validation failed on %s: %v", number, active.Name(), err))
				return batchAbortedValidation
			}

			s.logger.Error("block fetch failed",
				zap.Uint64("number", number),
				zap.String("endpoint", string(active.Name())),
				zap.Error(err))
			// Feed the error into the endpoint statistics first; when the
			// threshold trips and switches, the explicit request below is
			// absorbed by the cooldown.
			s.failover.ReportPerformanceIssue(ctx, failover.IssueError, 1)
			s.failover.Switch(ctx, fmt.Sprintf("error fetching block %d from %s: %v", number, active.Name(), err))
			return batchAbortedTransport
		}

		if anchor := s.cursor.Anchor(); len(anchor) > 0 && !bytes.Equal(block.ParentHash, anchor) {
			s.metrics.ObserveValidationFailure("hash_mismatch")
			s.logger.Warn("hash chain mismatch",
				zap.Uint64("number", number),
				zap.String("endpoint", string(active.Name())),
				zap.String("parent_hash", hexutil.Encode(block.ParentHash)),
				zap.String("expected", hexutil.Encode(anchor)))
			s.failover.Switch(ctx, fmt.Sprintf("hash chain mismatch at block %d from %s", number, active.Name()))
			return batchAbortedValidation
		}

		s.cursor.Advance(block)
		confirmed++

		record := model.ConfirmedBlock{
			BlockNumber:      block.Number,
			Timestamp:        block.Timestamp,
			Hash:             hexutil.Encode(block.Hash),
			ParentHash:       hexutil.Encode(block.ParentHash),
			TransactionCount: block.TransactionCount,
		}
		if err := s.emitter.Emit(ctx, record); err != nil {
			s.logger.Warn("confirmed block record not emitted",
				zap.Uint64("number", number),
				zap.Error(err))
		}
		s.metrics.ObserveBlockConfirmed(block.Number, elapsed.Seconds())

		if elapsed > s.maxBlockProcessingTime {
			// Advisory; the batch keeps going unless the rolling
			// average trips inside the controller.
			s.logger.Warn("block fetch exceeded processing budget",
				zap.Uint64("number", number),
				zap.Duration("elapsed", elapsed),
				zap.Duration("budget", s.maxBlockProcessingTime))
			s.failover.ReportPerformanceIssue(ctx, failover.IssueSlowProcessing, elapsed.Seconds())
		}
	}

	return batchCompleted
}
