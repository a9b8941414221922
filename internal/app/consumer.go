package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/client"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/events"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka/consumer"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer renders PDF artifacts for payslip.generated events.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	employeeRepo := employee.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	clientService := client.NewService(gormDB, clientRepo)

	// The consumer only reads and renders; it never queues new events,
	// so the reconciler runs without an outbox.
	reconciler := payslip.NewReconciler(employeeRepo, payslipRepo, nil, zap.L())
	payslipService := payslip.NewService(
		reconciler,
		employeeRepo,
		payslipRepo,
		clientService,
		os.Getenv("PAYSLIP_ARTIFACT_DIR"),
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipGeneratedTopic,
		GroupID:        "payslip-portal-artifacts",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipGenerated(ctx, reader, payslipService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
