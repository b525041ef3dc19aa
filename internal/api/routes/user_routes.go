package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the acting user's self-service routes.
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware gin.HandlerFunc) {
	me := rg.Group("/users/me")
	me.Use(authMiddleware)
	{
		me.GET("", userHandler.GetMe)
		me.PUT("", userHandler.UpdateMe)
		me.GET("/saved-jobs", userHandler.ListSavedJobs)
		me.PUT("/saved-jobs/:jobId", userHandler.SaveJob)
		me.DELETE("/saved-jobs/:jobId", userHandler.UnsaveJob)
	}
}
