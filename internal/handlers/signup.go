package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/services"
)

// Signuper defines the interface that the sign-up service must implement.
type Signuper interface {
	Register(ctx context.Context, username, password string) (string, error)
}

// SignupRequest represents the JSON body for user sign-up
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// SignupResponse represents a successful sign-up response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// SignupErrorResponse represents an error response for sign-up
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Username already exists
	Error string `json:"error"`
}

// NewSignupHandler returns an HTTP handler for user sign-up.
// @Summary Register a new user
// @Description Creates a new user account. Usernames are unique. The password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User sign-up request"
// @Success 201 {object} handlers.SignupResponse "User successfully registered"
// @Failure 400 {object} handlers.SignupErrorResponse "Missing fields / invalid request"
// @Failure 409 {object} handlers.SignupErrorResponse "Username already exists"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		_, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Username already exists",
				})
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Username and password are required",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Message: "User registered successfully",
		})
	}
}
