// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds routing settings.
type RouterConfig struct {
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Router wires the handlers into a Chi router.
type Router struct {
	handler *Handler
	config  RouterConfig
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, cfg RouterConfig) *Router {
	return &Router{
		handler: handler,
		config:  cfg,
	}
}

// Setup returns the configured http.Handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(RequestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(RateLimit(router.config.RateLimitRequests, router.config.RateLimitWindow))
		r.Use(PrometheusMetrics)
		r.Use(Compression)

		r.Get("/health", router.handler.Health)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/frequencies", router.handler.Frequencies)
		r.Post("/sync", router.handler.TriggerSync)
		r.Get("/sync", router.handler.SyncStatus)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, ErrCodeNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	return r
}
