package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/services"
	"github.com/arfoundry/model-gateway/internal/storage"
)

// TemplateDeleter defines the interface that the template deletion service must implement.
type TemplateDeleter interface {
	Delete(ctx context.Context, name string) error
}

// DeleteTemplateResponse represents a successful deletion response
// swagger:model DeleteTemplateResponse
type DeleteTemplateResponse struct {
	// Success message
	// default: Template deleted successfully
	Message string `json:"message"`
}

// DeleteTemplateErrorResponse represents an error response for template deletion
// swagger:model DeleteTemplateErrorResponse
type DeleteTemplateErrorResponse struct {
	// Error message
	// default: Template not found
	Error string `json:"error"`
}

// NewDeleteTemplateHandler returns an HTTP handler for deleting a stored viewer page.
// @Summary Delete a viewer page
// @Description Deletes the named viewer page. Requires a bearer token.
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param name path string true "Viewer page name, with or without the .html suffix"
// @Success 200 {object} handlers.DeleteTemplateResponse "Template deleted"
// @Failure 400 {object} handlers.DeleteTemplateErrorResponse "Invalid name"
// @Failure 404 {object} handlers.DeleteTemplateErrorResponse "Template not found"
// @Router /delete-template/{name} [delete]
func NewDeleteTemplateHandler(svc TemplateDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		err := svc.Delete(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidName):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(DeleteTemplateErrorResponse{
					Error: "Invalid template name",
				})
			case errors.Is(err, services.ErrTemplateNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteTemplateErrorResponse{
					Error: "Template not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteTemplateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteTemplateResponse{
			Message: "Template deleted successfully",
		})
	}
}
