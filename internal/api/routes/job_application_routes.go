package routes

import (
	"job-marketplace-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers all routes related to job applications.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	jobAppHandler handlers.JobApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	// Employer view of a single job's applications
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		jobsGroup.GET("/:id/applications", jobAppHandler.ListApplicationsForJob)
	}

	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.GET("", jobAppHandler.ListMyApplications)
		appsGroup.GET("/employer", jobAppHandler.ListEmployerApplications)
		appsGroup.GET("/:id", jobAppHandler.GetApplicationByID)
		appsGroup.PUT("/:id/status", jobAppHandler.UpdateApplicationStatus)
		appsGroup.DELETE("/:id", jobAppHandler.WithdrawApplication)
	}
}
