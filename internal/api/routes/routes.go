package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/api/openapi"
	"jobboard-api/internal/app"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) error {
	log := app.Logger

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create handlers
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator, log)
	appHandler := handlers.NewApplicationHandler(app.ApplicationService, app.Validator, log)
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator, log)

	// --- Middleware ---
	authMiddleware, err := middleware.PrincipalAuth(app.Config.Auth, log)
	if err != nil {
		return err
	}

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterJobApplicationRoutes(apiV1, appHandler, authMiddleware)
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.Readiness(app.ReadinessChecks()))

	// --- API description ---
	if app.OpenAPI != nil {
		specHandler, err := openapi.Handler(app.OpenAPI)
		if err != nil {
			return err
		}
		router.GET("/openapi.json", specHandler)
		log.Debug("Configuring Swagger UI handler")
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/openapi.json")))
	}
	return nil
}
