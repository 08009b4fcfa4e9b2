package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/services"
)

// OtpSender defines the interface that the OTP service must implement.
type OtpSender interface {
	SendOtp(ctx context.Context, email string) (string, error)
}

// SendOtpRequest represents the JSON body for requesting a sign-up OTP
// swagger:model SendOtpRequest
type SendOtpRequest struct {
	// Email to verify
	// required: true
	// default: john@example.com
	Email string `json:"email"`
}

// SendOtpResponse represents a successful OTP request response
// swagger:model SendOtpResponse
type SendOtpResponse struct {
	// The minted one-time passcode
	// default: 1234
	Otp string `json:"otp"`
}

// SendOtpErrorResponse represents an error response for the OTP request
// swagger:model SendOtpErrorResponse
type SendOtpErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

// NewSendOtpHandler returns an HTTP handler that mints and emails a sign-up OTP.
// @Summary Request a sign-up OTP
// @Description Mints a one-time passcode for the given email and sends it via SMTP.
// @Tags auth
// @Accept json
// @Produce json
// @Param sendOtpRequest body handlers.SendOtpRequest true "OTP request"
// @Success 200 {object} handlers.SendOtpResponse "OTP minted"
// @Failure 400 {object} handlers.SendOtpErrorResponse "Missing email / invalid request"
// @Failure 409 {object} handlers.SendOtpErrorResponse "Email already registered"
// @Router /sendotp [post]
func NewSendOtpHandler(svc OtpSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SendOtpRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SendOtpErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		otp, err := svc.SendOtp(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SendOtpErrorResponse{
					Error: "Email is required",
				})
			case errors.Is(err, services.ErrEmailTaken):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(SendOtpErrorResponse{
					Error: "Email already registered",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SendOtpErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SendOtpResponse{
			Otp: otp,
		})
	}
}
