// Package http provides HTTP routing and middleware configuration
// for the GopherCards service.
package http

import (
	"net/http"

	"github.com/atinyakov/GopherCards/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the
// GopherCards API. It applies request IDs, JSON content-type
// enforcement and request logging, and mounts the generation and
// export endpoints under /api.
//
// Routes:
//
//	POST /api/generate → deckHandler.Generate
//	POST /api/export   → exportHandler.Export
func NewRouter(
	deckHandler *DeckHandler,
	exportHandler *ExportHandler,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Tag each request with an ID before anything logs it
	r.Use(chiMiddleware.RequestID)

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Mount API routes
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", deckHandler.Generate)
		r.Post("/export", exportHandler.Export)
	})

	return r
}
