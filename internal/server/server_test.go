package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/openapi"
	"jobboard-api/internal/app"
	"jobboard-api/internal/logger"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	doc, err := openapi.Load(context.Background())
	require.NoError(t, err)

	srv, err := server.NewServer(&app.Application{
		Config: &config.Config{
			Server: config.ServerConfig{Host: "localhost", Port: 0, Mode: "test"},
			CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			Auth:   config.AuthConfig{JWTSecret: "secret"},
		},
		Logger:             logger.Discard(),
		Validator:          handlers.NewValidator(),
		OpenAPI:            doc,
		JobService:         new(mocks.MockJobService),
		ApplicationService: new(mocks.MockApplicationService),
		UserService:        new(mocks.MockUserService),
	})
	require.NoError(t, err)
	return srv
}

func TestServer_CORS(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
	req.Header.Set("Origin", "http://evil.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RequestIDAndHealth(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
