package auth

import (
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByEmployee(2, 5), handler.Me)
		auth.POST("/logout", handler.Logout)
	}
}
