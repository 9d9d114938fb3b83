package routes

import (
	"job-marketplace-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the category registry. Listing is public.
func RegisterCategoryRoutes(rg *gin.RouterGroup, categoryHandler handlers.CategoryHandlerInterface, authMiddleware gin.HandlerFunc) {
	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("", authMiddleware, categoryHandler.CreateCategory)
		categories.PUT("/:id", authMiddleware, categoryHandler.UpdateCategory)
		categories.DELETE("/:id", authMiddleware, categoryHandler.DeleteCategory)
	}
}
