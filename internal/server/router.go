package server

import (
	"net/http"

	"catalog-page/internal/logger"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// NewRouter registers the routes and applies request id and access logging
// around limit.
func NewRouter(h *Handler, limit Middleware) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Page)
	mux.HandleFunc("GET /api/products", h.Products)
	mux.HandleFunc("GET /api/categories", h.Categories)
	mux.HandleFunc("GET /api/snapshots/latest", h.LatestSnapshot)
	mux.HandleFunc("GET /api/stats", h.Stats)
	mux.HandleFunc("/health", h.Health)

	var inner http.Handler = mux
	if limit != nil {
		inner = limit(inner)
	}
	return logger.RequestIDMiddleware(logger.LoggingMiddleware(inner))
}
