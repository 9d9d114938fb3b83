package routes

import (
	"job-marketplace-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs. Reads are public; the listing
// uses optionalAuth so exclude_own can see the caller.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", optionalAuth, jobHandler.ListJobs)
		jobs.POST("", authMiddleware, jobHandler.CreateJob)
		jobs.GET("/mine", authMiddleware, jobHandler.ListMyJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.PATCH("/:id/status", authMiddleware, jobHandler.UpdateJobStatus)
		jobs.POST("/:id/apply", authMiddleware, jobHandler.ApplyToJob)
		jobs.PATCH("/:id/select/:applicantId", authMiddleware, jobHandler.SelectApplicant)
	}
}
