package app

import (
	"database/sql"
	"os"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/auth"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/client"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/messaging/kafka"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	clientService := client.NewService(gormDB, clientRepo)
	employeeService := employee.NewService(employeeRepo)
	authService := auth.NewService(employeeRepo)
	reconciler := payslip.NewReconciler(employeeRepo, payslipRepo, outboxRepo, zap.L())
	payslipService := payslip.NewService(
		reconciler,
		employeeRepo,
		payslipRepo,
		clientService,
		os.Getenv("PAYSLIP_ARTIFACT_DIR"),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	clientHandler := client.NewHandler(clientService)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		client.RegisterRoutes(api, clientHandler)
		payslip.RegisterRoutes(api, payslipHandler, rdb)
	}

	return nil
}

// ensureOutboxTable keeps the outbox DDL next to the only repo that
// touches it; the portal has no separate migration pipeline.
func ensureOutboxTable(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload JSONB NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`)
	return err
}

// ensureClientDefaultIndex has the database enforce the at-most-one
// default client invariant; two transactions racing Count()==0 cannot
// both commit a default row past this index.
func ensureClientDefaultIndex(db *sql.DB) error {
	_, err := db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS uniq_clients_default
ON clients (is_default) WHERE is_default`)
	return err
}
