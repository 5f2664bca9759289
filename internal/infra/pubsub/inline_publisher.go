package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "lineconnect/internal/delivery/context"
	"lineconnect/internal/domain/entity"
	"lineconnect/internal/domain/service"
	"lineconnect/internal/usecase"

	"github.com/pkg/errors"
)

const defaultProcessingTimeout = 2 * time.Minute

// BatchProcessor runs a batch of webhook events.
type BatchProcessor interface {
	ProcessEvents(ctx context.Context, events []entity.WebhookEvent) usecase.ProcessSummary
}

// inlinePublisher processes batches in-process on a detached goroutine so the
// webhook response never waits on observers.
type inlinePublisher struct {
	processor BatchProcessor
	timeout   time.Duration
	logger    *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewInlinePublisher creates a publisher that hands batches straight to processor.
func NewInlinePublisher(processor BatchProcessor, timeout time.Duration, logger *slog.Logger) service.WebhookPublisher {
	if timeout <= 0 {
		timeout = defaultProcessingTimeout
	}

	return &inlinePublisher{
		processor: processor,
		timeout:   timeout,
		logger:    logger,
	}
}

// PublishWebhookBatch starts processing and returns immediately.
func (p *inlinePublisher) PublishWebhookBatch(ctx context.Context, batch *service.WebhookBatch) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errors.New("inline publisher is closed")
	}

	// Outlives the inbound request but keeps its values (request id, logger).
	detached, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	logger := deliverycontext.GetLoggerOrDefault(ctx, p.logger)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		summary := p.processor.ProcessEvents(detached, batch.Events)
		logger.Info("[InlinePubSub] Webhook batch processed",
			slog.String("destination", batch.Destination),
			slog.Int("received", summary.Received),
			slog.Int("processed", summary.Processed),
			slog.Int("duplicates", summary.Duplicates),
			slog.Int("failed", summary.Failed),
		)
	}()

	return nil
}

// Close rejects new batches and waits for in-flight ones.
func (p *inlinePublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
