package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "payslip",
		AggregateID:   "EMP001:2025-03",
		EventType:     "payslip.generated",
		Topic:         "payslip.generated",
		Payload:       []byte(`{"employeeId":"EMP001"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	event := pendingEvent()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(event.ID, event.AggregateType, event.AggregateID,
			event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxCreateRejectsInvalidEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := kafka.NewOutboxRepository(db)

	event := pendingEvent()
	event.Payload = nil
	assert.Error(t, repo.Create(context.Background(), event))

	event = pendingEvent()
	event.Status = "shipped"
	assert.Error(t, repo.Create(context.Background(), event))

	// Invalid events never reach the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "aggregate_type", "aggregate_id", "event_type",
		"topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		"11111111-1111-1111-1111-111111111111", "payslip", "EMP001:2025-03",
		"payslip.generated", "payslip.generated", []byte(`{}`),
		kafka.OutboxStatusPending, 0, now,
	).AddRow(
		"22222222-2222-2222-2222-222222222222", "payslip", "EMP002:2025-03",
		"payslip.generated", "payslip.generated", []byte(`{}`),
		kafka.OutboxStatusFailed, 3, now,
	)

	mock.ExpectQuery("SELECT").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 10).
		WillReturnRows(rows)

	repo := kafka.NewOutboxRepository(db)
	events, err := repo.ListPending(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "EMP001:2025-03", events[0].AggregateID)
	assert.Equal(t, 3, events[1].RetryCount)
	assert.Equal(t, kafka.OutboxStatusFailed, events[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkSent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkSent(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxMarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, kafka.OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
