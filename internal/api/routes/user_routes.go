package routes

import (
	"job-marketplace-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the auth routes and the user directory.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware, adminOnly gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/verify", userHandler.VerifyAccount)
		auth.POST("/resend-code", userHandler.ResendCode)
		auth.POST("/login", userHandler.Login)
		auth.POST("/logout", userHandler.Logout)
	}

	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.Me)
		users.GET("", adminOnly, userHandler.ListUsers)
		users.PATCH("/:id/status", adminOnly, userHandler.SetUserStatus)
	}
}
