package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/middlewares"
	"github.com/arfoundry/model-gateway/internal/services"
)

// PasswordChanger defines the interface that the password change service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmNewPassword string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"oldPassword"`

	// New password
	// required: true
	NewPassword string `json:"newPassword"`

	// New password confirmation
	// required: true
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// ChangePasswordResponse represents a successful password change response
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	// Success message
	// default: Password changed successfully
	Message string `json:"message"`
}

// ChangePasswordErrorResponse represents an error response for a password change
// swagger:model ChangePasswordErrorResponse
type ChangePasswordErrorResponse struct {
	// Error message
	// default: Invalid current password
	Error string `json:"error"`
}

// NewChangePasswordHandler returns an HTTP handler for changing the authenticated user's password.
// @Summary Change password
// @Description Verifies the current password and replaces it with the new one. Requires a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.ChangePasswordResponse "Password changed"
// @Failure 400 {object} handlers.ChangePasswordErrorResponse "Missing fields / password mismatch"
// @Failure 401 {object} handlers.ChangePasswordErrorResponse "Invalid current password"
// @Router /changepassword [post]
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChangePasswordRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		userID := middlewares.GetUserIDFromContext(r.Context())

		err := svc.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword, req.ConfirmNewPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "All fields are required",
				})
			case errors.Is(err, services.ErrPasswordMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Passwords do not match",
				})
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Invalid current password",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ChangePasswordErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ChangePasswordResponse{
			Message: "Password changed successfully",
		})
	}
}
