package client

import (
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	clients := r.Group("/clients")
	clients.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(middleware.RoleAdmin))
	{
		clients.GET("", handler.GetAll)
		clients.POST("", handler.Create)
		clients.PATCH("/:id", handler.Update)
		clients.DELETE("/:id", handler.Delete)
	}
}
