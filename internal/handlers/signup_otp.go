package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/services"
)

// OtpSignuper defines the interface that the OTP sign-up service must implement.
type OtpSignuper interface {
	SignUp(ctx context.Context, req services.SignUpRequest) (string, error)
}

// SignupOtpRequest represents the JSON body for the OTP-verified sign-up
// swagger:model SignupOtpRequest
type SignupOtpRequest struct {
	// First name
	// required: true
	// default: John
	FirstName string `json:"firstName"`

	// Last name
	// required: true
	// default: Doe
	LastName string `json:"lastName"`

	// Email, must match a live OTP
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Password confirmation
	// required: true
	// default: secret123
	ConfirmPassword string `json:"confirmPassword"`

	// Account type
	// default: personal
	AccountType string `json:"accountType"`

	// The one-time passcode sent by email
	// required: true
	// default: 123456
	OTP string `json:"otp"`
}

// SignupOtpResponse represents a successful OTP sign-up response
// swagger:model SignupOtpResponse
type SignupOtpResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// SignupOtpErrorResponse represents an error response for the OTP sign-up
// swagger:model SignupOtpErrorResponse
type SignupOtpErrorResponse struct {
	// Error message
	// default: Invalid or expired OTP
	Error string `json:"error"`
}

// NewSignupOtpHandler returns an HTTP handler for the OTP-verified sign-up.
// @Summary Register a new user with an emailed OTP
// @Description Creates a user account after verifying the one-time passcode previously sent to the email.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupOtpRequest body handlers.SignupOtpRequest true "OTP sign-up request"
// @Success 201 {object} handlers.SignupOtpResponse "User successfully registered"
// @Failure 400 {object} handlers.SignupOtpErrorResponse "Missing fields / password mismatch / invalid OTP"
// @Failure 409 {object} handlers.SignupOtpErrorResponse "Email already registered"
// @Router /signup-otp [post]
func NewSignupOtpHandler(svc OtpSignuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupOtpRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupOtpErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		_, err := svc.SignUp(r.Context(), services.SignUpRequest{
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
			AccountType:     req.AccountType,
			OTP:             req.OTP,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupOtpErrorResponse{
					Error: "All fields are required",
				})
			case errors.Is(err, services.ErrPasswordMismatch):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupOtpErrorResponse{
					Error: "Passwords do not match",
				})
			case errors.Is(err, services.ErrOTPInvalid):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupOtpErrorResponse{
					Error: "Invalid or expired OTP",
				})
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SignupOtpErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupOtpErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupOtpResponse{
			Message: "User registered successfully",
		})
	}
}
