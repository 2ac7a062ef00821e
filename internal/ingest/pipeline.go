package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lineage/internal/person"
)

// DefaultChunkSize matches the store's per-batch write limit.
const DefaultChunkSize = 500

// DefaultChunkDelay is the cooperative pause between chunk writes.
const DefaultChunkDelay = time.Second

// BatchResult reports one batch-create call against the person store.
type BatchResult struct {
	Success bool
	Created int
	Errors  []string
}

// BatchWriter is the persistence collaborator the pipeline writes through.
// Production uses the SQLite store; tests inject fakes.
type BatchWriter interface {
	CreateBatch(ctx context.Context, forms []person.FormSubmission, actor string) (BatchResult, error)
}

// Pipeline persists form submissions in sequential fixed-size chunks.
type Pipeline struct {
	writer    BatchWriter
	logger    *slog.Logger
	chunkSize int
	delay     time.Duration
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithChunkSize overrides the per-batch record count.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) {
		if size > 0 {
			p.chunkSize = size
		}
	}
}

// WithChunkDelay overrides the pause between chunk writes. Zero disables it.
func WithChunkDelay(delay time.Duration) Option {
	return func(p *Pipeline) {
		if delay >= 0 {
			p.delay = delay
		}
	}
}

// New builds a pipeline around the given writer.
func New(writer BatchWriter, logger *slog.Logger, opts ...Option) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		writer:    writer,
		logger:    logger,
		chunkSize: DefaultChunkSize,
		delay:     DefaultChunkDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run writes the submissions chunk by chunk and fills the persistence side
// of the summary. Every input form is accounted for exactly once: created
// counts and failed-chunk sizes always sum to len(forms). A chunk failure
// is recorded and the next chunk proceeds; cancellation fails the chunks
// that never ran.
func (p *Pipeline) Run(ctx context.Context, forms []person.FormSubmission, actor string) Summary {
	summary := Summary{Valid: len(forms)}
	if len(forms) == 0 {
		return summary
	}

	batches := (len(forms) + p.chunkSize - 1) / p.chunkSize
	p.logger.Info("starting batch ingestion",
		slog.Int("records", len(forms)),
		slog.Int("batches", batches),
		slog.Int("chunk_size", p.chunkSize),
		slog.String("actor", actor),
	)

	for start, batch := 0, 1; start < len(forms); start, batch = start+p.chunkSize, batch+1 {
		end := start + p.chunkSize
		if end > len(forms) {
			end = len(forms)
		}
		chunk := forms[start:end]

		if err := ctx.Err(); err != nil {
			remaining := len(forms) - start
			summary.Failed += remaining
			summary.Errors = append(summary.Errors, fmt.Sprintf("Batch %d: run canceled with %d records unwritten", batch, remaining))
			p.logger.Warn("ingestion canceled", slog.Int("batch", batch), slog.Int("unwritten", remaining))
			break
		}

		result, err := p.writer.CreateBatch(ctx, chunk, actor)
		switch {
		case err != nil:
			summary.Failed += len(chunk)
			summary.Errors = append(summary.Errors, fmt.Sprintf("Batch %d (%d records): %v", batch, len(chunk), err))
			p.logger.Error("batch write failed", slog.Int("batch", batch), slog.Int("records", len(chunk)), slog.Any("error", err))
		case !result.Success:
			summary.Failed += len(chunk)
			reason := "store reported failure"
			if len(result.Errors) > 0 {
				reason = strings.Join(result.Errors, "; ")
			}
			summary.Errors = append(summary.Errors, fmt.Sprintf("Batch %d (%d records): %s", batch, len(chunk), reason))
			p.logger.Error("batch write rejected", slog.Int("batch", batch), slog.String("reason", reason))
		default:
			summary.Imported += result.Created
			p.logger.Info("batch written", slog.Int("batch", batch), slog.Int("created", result.Created))
		}

		if end < len(forms) && p.delay > 0 {
			sleepContext(ctx, p.delay)
		}
	}

	return summary
}

// sleepContext pauses for the chunk delay but wakes early on cancellation.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
