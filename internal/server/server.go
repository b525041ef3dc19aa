package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router *gin.Engine
	app    *app.Application // Store the application container
	http   *http.Server
}

func NewServer(app *app.Application) (*Server, error) {
	if app.Config.Server.Mode != "" {
		gin.SetMode(app.Config.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(app.Logger))

	// --- Configure and Apply CORS Middleware ---
	app.Logger.WithField("origins", app.Config.CORS.AllowedOrigins).Info("Configuring CORS")
	router.Use(cors.New(corsConfig(app.Config.CORS.AllowedOrigins)))

	_ = router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	if err := routes.RegisterRoutes(router, app); err != nil {
		return nil, err
	}

	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:              app.Config.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	return cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, // How long the result of a preflight request can be cached
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Start blocks until the server stops. A graceful Shutdown returns nil.
func (s *Server) Start() error {
	s.app.Logger.WithField("addr", s.http.Addr).Info("Server starting")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
