package employee

import (
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(middleware.RoleAdmin))
	{
		employees.GET("", handler.GetAll)
		employees.POST("", handler.Upsert)
		employees.GET("/:id", handler.GetByID)
		employees.DELETE("/:id", handler.Delete)
	}
}
