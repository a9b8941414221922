package producer

import (
	"context"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const defaultPollBatch = 100

// ProcessOutboxEvents polls pending and retryable outbox rows and
// publishes them to Kafka until the context is cancelled. Publish
// failures only bump the retry bookkeeping; the row stays until it
// eventually goes through. The writer is dialed on the first event
// that needs publishing, not at startup.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer *connection.Lazy[*kafkago.Writer],
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-ticker.C:
		}

		events, err := repo.ListPending(ctx, defaultPollBatch)
		if err != nil {
			log.Error("list pending outbox events failed", zap.Error(err))
			continue
		}
		if len(events) == 0 {
			continue
		}

		w, err := writer.Get()
		if err != nil {
			log.Error("kafka writer unavailable", zap.Error(err))
			continue
		}

		for _, event := range events {
			if err := publishEvent(ctx, w, event); err != nil {
				log.Error("publish outbox event failed",
					zap.String("outbox_id", event.ID),
					zap.String("topic", event.Topic),
					zap.Error(err),
				)
				if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
					log.Error("mark outbox event failed errored",
						zap.String("outbox_id", event.ID),
						zap.Error(markErr),
					)
				}
				continue
			}

			if err := repo.MarkSent(ctx, event.ID); err != nil {
				log.Error("mark outbox event sent errored",
					zap.String("outbox_id", event.ID),
					zap.Error(err),
				)
			}
		}
	}
}
