package handlers

import (
	"net/http"

	"github.com/lsobral/Game-Price-Indicators-Backend/internal/api/response"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	upstreams []string
}

// NewSystemHandler creates a new SystemHandler. Upstreams names the external
// providers this instance is configured against, reported by Health.
func NewSystemHandler(upstreams []string) *SystemHandler {
	return &SystemHandler{
		upstreams: upstreams,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string   `json:"status"`
	Upstreams []string `json:"upstreams"`
}

// Health reports service liveness. Upstream reachability is not probed here;
// every data endpoint surfaces provider failures on its own.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with HealthResponse
func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Upstreams: h.upstreams,
	})
}
