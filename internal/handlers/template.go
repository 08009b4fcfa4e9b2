package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/services"
	"github.com/arfoundry/model-gateway/internal/storage"
)

// TemplateReader defines the interface that the template serving service must implement.
type TemplateReader interface {
	Read(ctx context.Context, name string) (io.ReadCloser, error)
}

// TemplateErrorResponse represents an error response for template serving
// swagger:model TemplateErrorResponse
type TemplateErrorResponse struct {
	// Error message
	// default: Template not found
	Error string `json:"error"`
}

// NewTemplateHandler returns an HTTP handler that streams a stored viewer page.
// @Summary Serve a viewer page
// @Description Streams the named viewer page as HTML. This is the URL the QR code resolves to.
// @Tags templates
// @Produce html
// @Param fileName path string true "Viewer page file name"
// @Success 200 {string} string "Viewer HTML"
// @Failure 404 {object} handlers.TemplateErrorResponse "Template not found"
// @Router /template/{fileName} [get]
func NewTemplateHandler(svc TemplateReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "fileName")

		page, err := svc.Read(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidName),
				errors.Is(err, services.ErrTemplateNotFound):
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TemplateErrorResponse{
					Error: "Template not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TemplateErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}
		defer page.Close()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, page); err != nil {
			logger.Log.Errorw("streaming template failed", "err", err)
		}
	}
}
