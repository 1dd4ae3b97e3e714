// Package httpapi assembles the service router. Transport concerns live here;
// business logic stays in the domain packages.
package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"spc-gateway/internal/bureau/handler"
	"spc-gateway/internal/platform/middleware"
	"spc-gateway/internal/ratelimit"
)

// NewRouter wires middleware and mounts the bureau endpoints under /v1.
// Health and metrics stay outside the authenticated group.
func NewRouter(bureau *handler.Handler, validator middleware.JWTValidator, limiter *ratelimit.Limiter, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(v1 chi.Router) {
		v1.Use(middleware.RequireAuth(validator, logger))
		v1.Use(ratelimit.Middleware(limiter, logger))
		bureau.Register(v1)
	})

	return r
}
