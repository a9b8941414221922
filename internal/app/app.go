package app

import (
	"log"
	"os"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/client"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
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
	log.Println("✅ Database connection established")

	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&payslip.Payslip{},
		&client.Client{},
	); err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	if err := ensureOutboxTable(sqlDB); err != nil {
		return err
	}
	if err := ensureClientDefaultIndex(sqlDB); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	router.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))

	return registerModules(router, sqlDB, gormDB, redisClient)
}
