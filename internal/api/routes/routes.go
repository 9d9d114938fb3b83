package routes

import (
	"log"

	"job-marketplace-api/internal/api/handlers"
	"job-marketplace-api/internal/api/middleware"
	"job-marketplace-api/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	api := router.Group("/api")

	userHandler := handlers.NewUserHandler(app.UserService, app.Validator, app.Config.JWT.CookieSecure)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	jobAppHandler := handlers.NewJobApplicationHandler(app.JobApplicationService, app.Validator)
	categoryHandler := handlers.NewCategoryHandler(app.CategoryService)
	healthHandler := handlers.NewHealthHandler(app.DBPool, app.Cache)

	authMiddleware := middleware.JWTAuthMiddleware(app.Tokens)
	optionalAuth := middleware.OptionalAuth(app.Tokens)
	adminOnly := middleware.RequireAdmin()

	RegisterUserRoutes(api, userHandler, authMiddleware, adminOnly)
	RegisterJobRoutes(api, jobHandler, authMiddleware, optionalAuth)
	RegisterJobApplicationRoutes(api, jobAppHandler, authMiddleware)
	RegisterCategoryRoutes(api, categoryHandler, authMiddleware)

	router.GET("/health", healthHandler.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
