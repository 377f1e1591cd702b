package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"trendlab/internal/services"
	"trendlab/pkg/contracts"
)

// HealthHandler reports service health and snapshot state
type HealthHandler struct {
	service *services.DataService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *services.DataService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Routes sets up the health routes
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetHealth)
	return r
}

// GetHealth returns health status and the current snapshot summary
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status()
	response := map[string]interface{}{
		"status":  "ok",
		"version": contracts.Version,
		"data":    status,
	}
	if !status.Loaded {
		response["status"] = "degraded"
	}
	render.JSON(w, r, response)
}
