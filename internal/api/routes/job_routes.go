package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// Listing and detail are public; everything else goes through authMiddleware.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID) // Counts a view
	}

	owned := rg.Group("/jobs")
	owned.Use(authMiddleware)
	{
		owned.POST("", jobHandler.CreateJob)
		owned.PUT("/:id", jobHandler.UpdateJob)    // Owner only
		owned.DELETE("/:id", jobHandler.DeleteJob) // Owner only
	}

	rg.GET("/dashboard", authMiddleware, jobHandler.Dashboard)
}
