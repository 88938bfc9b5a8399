// Package api provides HTTP handlers for the sleep calculator API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/noozes/sleepcalc/internal/sleep"
)

// Handler serves the calculation endpoints.
type Handler struct {
	svc      *sleep.Service
	logger   *slog.Logger
	validate *validator.Validate
}

// NewHandler creates a new Handler backed by the given service.
func NewHandler(svc *sleep.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		svc:      svc,
		logger:   logger,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the calculation routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate-from-now", h.CalculateFromNow)
		r.Post("/calculate-wake-up", h.CalculateWakeUp)
		r.Post("/calculate-bedtime", h.CalculateBedtime)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
