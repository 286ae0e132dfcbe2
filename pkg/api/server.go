// Package api exposes the mnemonic codec over HTTP: encode and decode
// endpoints, dictionary lookups, a health check and Prometheus metrics,
// behind API-key authentication.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bragi-io/bragi/pkg/mnemonic"
)

// StartServer starts the HTTP server with all routes configured
func StartServer(config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(mnemonic.NewCodec(), config, metrics)

	r := NewRouter(server)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("bragi API listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

// NewRouter assembles the chi router for a server: logging and recovery
// middleware, CORS, request ids, the open /metrics endpoint and the
// API-key protected /api/v1 routes.
func NewRouter(server *Server) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(server.config.APIKey, server.metrics))

		// Health check
		r.Get("/health", server.metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Codec operations
		r.Post("/encode", server.metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", server.metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))

		// Dictionary lookups
		r.Get("/words", server.metrics.InstrumentHandler("GET", "/api/v1/words", server.handleDictionary))
		r.Get("/words/{index}", server.metrics.InstrumentHandler("GET", "/api/v1/words/{index}", server.handleWord))
	})

	return r
}
