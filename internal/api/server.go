package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	analysisapi "github.com/ideasage/backend/internal/api/analysis"
	chatapi "github.com/ideasage/backend/internal/api/chat"
	credentialapi "github.com/ideasage/backend/internal/api/credential"
	"github.com/ideasage/backend/internal/api/docs"
	ideaapi "github.com/ideasage/backend/internal/api/idea"
	"github.com/ideasage/backend/internal/api/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(
	credentialHandler *credentialapi.Handler,
	ideaHandler *ideaapi.Handler,
	analysisHandler *analysisapi.Handler,
	chatHandler *chatapi.Handler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                  // Recover from panics
	r.Use(chimiddleware.RequestID)                  // Add request ID
	r.Use(middleware.Logger(logger))                // Log requests
	r.Use(middleware.CORS)                          // Handle CORS
	r.Use(chimiddleware.Timeout(120 * time.Second)) // Covers generation plus simulated delivery

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	credentialapi.RegisterRoutes(r, credentialHandler)
	ideaapi.RegisterRoutes(r, ideaHandler)
	analysisapi.RegisterRoutes(r, analysisHandler)
	chatapi.RegisterRoutes(r, chatHandler)

	return r
}
