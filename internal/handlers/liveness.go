package handlers

import (
	"encoding/json"
	"net/http"
)

// LivenessResponse represents the liveness check response
// swagger:model LivenessResponse
type LivenessResponse struct {
	// Status message
	// default: model-gateway is up
	Message string `json:"message"`
}

// NewLivenessHandler returns an HTTP handler for the root liveness route.
// @Summary Liveness check
// @Description Reports that the service is up.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.LivenessResponse "Service is up"
// @Router / [get]
func NewLivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LivenessResponse{
			Message: "model-gateway is up",
		})
	}
}
