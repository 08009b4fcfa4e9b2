package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/logger"
)

// TemplateLister defines the interface that the template listing service must implement.
type TemplateLister interface {
	List(ctx context.Context) ([]string, error)
}

// ListTemplatesResponse represents the stored viewer pages
// swagger:model ListTemplatesResponse
type ListTemplatesResponse struct {
	// Viewer page file names
	Templates []string `json:"templates"`
}

// ListTemplatesErrorResponse represents an error response for template listing
// swagger:model ListTemplatesErrorResponse
type ListTemplatesErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListTemplatesHandler returns an HTTP handler listing the stored viewer pages.
// @Summary List viewer pages
// @Description Returns the file names of all generated viewer pages. Requires a bearer token.
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.ListTemplatesResponse "Viewer page names"
// @Failure 500 {object} handlers.ListTemplatesErrorResponse "Internal server error"
// @Router /list-templates [get]
func NewListTemplatesHandler(svc TemplateLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListTemplatesErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if templates == nil {
			templates = []string{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListTemplatesResponse{
			Templates: templates,
		})
	}
}
