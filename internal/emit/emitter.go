// Package emit delivers confirmed block records to the configured sink.
package emit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/blockpulse/hotswap-streamer/internal/model"
	"github.com/blockpulse/hotswap-streamer/pkg/batcher"
)

// Sink receives flushed batches of confirmed block records, in confirmation
// order.
type Sink interface {
	Write(ctx context.Context, records []model.ConfirmedBlock) error
}

// Emitter buffers confirmed block records so the streaming loop does not
// block on the sink, and flushes them in order by size or interval.
type Emitter struct {
	batcher *batcher.Batcher[model.ConfirmedBlock]
}

// New builds an Emitter over the sink.
func New(sink Sink, flushSize int, flushInterval time.Duration, rps int, logger *zap.Logger) *Emitter {
	return &Emitter{
		batcher: batcher.New(logger.Named("recordBatcher"), sink.Write, flushSize, flushInterval, rps),
	}
}

// Start begins background flushing.
func (e *Emitter) Start(ctx context.Context) { e.batcher.Start(ctx) }

// Stop flushes buffered records and stops background flushing.
func (e *Emitter) Stop() { e.batcher.Stop() }

// Emit queues one confirmed block record.
func (e *Emitter) Emit(ctx context.Context, record model.ConfirmedBlock) error {
	return e.batcher.Add(ctx, record)
}

// LogSink writes confirmed block records as structured log entries.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink builds a LogSink over the logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Write logs every record in the batch.
func (s *LogSink) Write(_ context.Context, records []model.ConfirmedBlock) error {
	for _, r := range records {
		s.logger.Info("block confirmed",
			zap.Uint64("block_number", r.BlockNumber),
			zap.Uint64("timestamp", r.Timestamp),
			zap.String("hash", r.Hash),
			zap.String("parent_hash", r.ParentHash),
			zap.Int("transaction_count", r.TransactionCount))
	}
	return nil
}
