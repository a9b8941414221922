package producer_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka/producer"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepo struct {
	listPendingFn func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error)
	markSentFn    func(ctx context.Context, id string) error
	markFailedFn  func(ctx context.Context, id string, reason string) error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error { return nil }

func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.listPendingFn(ctx, limit)
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error {
	return f.markSentFn(ctx, id)
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return f.markFailedFn(ctx, id, reason)
}

func TestOutboxWorkerIdleNeverDials(t *testing.T) {
	var dials int32
	writer := connection.NewLazy(func() (*kafkago.Writer, error) {
		atomic.AddInt32(&dials, 1)
		return &kafkago.Writer{}, nil
	})

	var polls int32
	repo := &fakeOutboxRepo{
		listPendingFn: func(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
			atomic.AddInt32(&polls, 1)
			return nil, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		producer.ProcessOutboxEvents(ctx, repo, writer, zap.NewNop(), 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&polls) >= 3
	}, time.Second, time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, int32(0), atomic.LoadInt32(&dials))
}
