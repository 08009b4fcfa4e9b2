package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/services"
)

// FormSubmitter defines the interface that the contact form service must implement.
type FormSubmitter interface {
	Submit(ctx context.Context, name, email, message string) error
}

// SubmitFormRequest represents the JSON body for a contact form submission
// swagger:model SubmitFormRequest
type SubmitFormRequest struct {
	// Sender name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Sender email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Message body
	// required: true
	Message string `json:"message"`
}

// SubmitFormResponse represents a successful contact form response
// swagger:model SubmitFormResponse
type SubmitFormResponse struct {
	// Success message
	// default: Message received
	Message string `json:"message"`
}

// SubmitFormErrorResponse represents an error response for the contact form
// swagger:model SubmitFormErrorResponse
type SubmitFormErrorResponse struct {
	// Error message
	// default: All fields are required
	Error string `json:"error"`
}

// NewSubmitFormHandler returns an HTTP handler for the contact form sink.
// @Summary Submit a contact message
// @Description Persists a contact form message.
// @Tags contact
// @Accept json
// @Produce json
// @Param submitFormRequest body handlers.SubmitFormRequest true "Contact form submission"
// @Success 200 {object} handlers.SubmitFormResponse "Message received"
// @Failure 400 {object} handlers.SubmitFormErrorResponse "Missing fields"
// @Router /submit-form [post]
func NewSubmitFormHandler(svc FormSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitFormRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SubmitFormErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Submit(r.Context(), req.Name, req.Email, req.Message)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SubmitFormErrorResponse{
					Error: "All fields are required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SubmitFormErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SubmitFormResponse{
			Message: "Message received",
		})
	}
}
