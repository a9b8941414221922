package consumer

import (
	"context"
	"encoding/json"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/events"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipGenerated renders the PDF artifact for every upserted
// payslip announced on the topic. Rendering failures leave the message
// uncommitted so it is retried on the next fetch.
func ConsumePayslipGenerated(
	ctx context.Context,
	reader *kafkago.Reader,
	payslipService payslip.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_generated")
	log.Info("payslip artifact consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip artifact consumer stopped")
				return
			}
			log.Error("fetch payslip event failed", zap.Error(err))
			continue
		}

		var event events.PayslipGeneratedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := payslipService.GenerateArtifact(ctx, event.EmployeeID, event.Month, event.Year); err != nil {
			log.Error("generate payslip artifact failed",
				zap.String("employee_id", event.EmployeeID),
				zap.String("month", event.Month),
				zap.String("year", event.Year),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip event failed", zap.Error(err))
			continue
		}

		log.Info("payslip artifact generated",
			zap.String("employee_id", event.EmployeeID),
			zap.String("month", event.Month),
			zap.String("year", event.Year),
		)
	}
}
