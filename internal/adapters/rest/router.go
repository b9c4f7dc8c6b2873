package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the public endpoints. Health and metrics stay outside the
// API-key gate; everything under /api requires the operator key.
func NewRouter(h *Handler, apiKey string, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(h.requireAPIKey(apiKey))
		r.Post("/api/participants", h.handleRegister)
		r.Get("/api/participants", h.handleList)
		r.Get("/api/participants/latest", h.handleLatest)
		r.Post("/api/participants/checkin", h.handleCheckIn)
		r.Get("/api/summary", h.handleSummary)
	})

	return r
}
