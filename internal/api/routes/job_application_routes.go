package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers all routes related to job applications.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.ApplicationHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	apps := rg.Group("/applications")
	apps.Use(authMiddleware)
	{
		apps.GET("", appHandler.ListApplications) // Scoped by role, optional ?jobId=
		apps.POST("", appHandler.SubmitApplication)
		apps.GET("/:id", appHandler.GetApplicationByID)
		apps.PATCH("/:id", appHandler.UpdateApplicationStatus) // Job owner only
	}
}
