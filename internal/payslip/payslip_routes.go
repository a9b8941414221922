package payslip

import (
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		// Employee-facing reads; the handler enforces the own-slip rule.
		payslips.GET("/view/:employeeId/:month", handler.GetView)
		payslips.GET("/view/:employeeId/:month/pdf", handler.DownloadPDF)

		admin := payslips.Group("", middleware.RoleMiddleware(middleware.RoleAdmin))
		{
			admin.GET("", handler.GetAll)
			admin.POST("", handler.Save)
			admin.POST("/bulk", handler.BulkUpsert)
			admin.POST("/delete", handler.DeleteMany)
			if redisClient != nil {
				admin.POST("/upload", middleware.Idempotency(redisClient), handler.Upload)
			} else {
				admin.POST("/upload", handler.Upload)
			}
		}
	}
}
