package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arfoundry/model-gateway/internal/services"
)

func TestSendOtpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockOtpSender)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"email":"john@example.com"}`,
			mockSetup: func(m *MockOtpSender) {
				m.EXPECT().
					SendOtp(gomock.Any(), "john@example.com").
					Return("042137", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"otp": "042137"},
		},
		{
			name: "email already registered",
			body: `{"email":"taken@example.com"}`,
			mockSetup: func(m *MockOtpSender) {
				m.EXPECT().
					SendOtp(gomock.Any(), "taken@example.com").
					Return("", services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"error": "Email already registered"},
		},
		{
			name: "missing email",
			body: `{"email":""}`,
			mockSetup: func(m *MockOtpSender) {
				m.EXPECT().
					SendOtp(gomock.Any(), "").
					Return("", services.ErrMissingFields)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Email is required"},
		},
		{
			name:         "invalid json",
			body:         `{not json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOtpSender(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSendOtpHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/sendotp", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestSignupOtpHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validBody := `{"firstName":"John","lastName":"Doe","email":"john@example.com",` +
		`"password":"secret123","confirmPassword":"secret123","accountType":"personal","otp":"042137"}`

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockOtpSignuper)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: validBody,
			mockSetup: func(m *MockOtpSignuper) {
				m.EXPECT().
					SignUp(gomock.Any(), services.SignUpRequest{
						FirstName:       "John",
						LastName:        "Doe",
						Email:           "john@example.com",
						Password:        "secret123",
						ConfirmPassword: "secret123",
						AccountType:     "personal",
						OTP:             "042137",
					}).
					Return("64f1a2b3c4d5e6f7a8b9c0d1", nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name: "invalid otp",
			body: validBody,
			mockSetup: func(m *MockOtpSignuper) {
				m.EXPECT().
					SignUp(gomock.Any(), gomock.Any()).
					Return("", services.ErrOTPInvalid)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Invalid or expired OTP"},
		},
		{
			name: "password mismatch",
			body: validBody,
			mockSetup: func(m *MockOtpSignuper) {
				m.EXPECT().
					SignUp(gomock.Any(), gomock.Any()).
					Return("", services.ErrPasswordMismatch)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "Passwords do not match"},
		},
		{
			name: "email taken",
			body: validBody,
			mockSetup: func(m *MockOtpSignuper) {
				m.EXPECT().
					SignUp(gomock.Any(), gomock.Any()).
					Return("", services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]string{"error": "Email already registered"},
		},
		{
			name:         "invalid json",
			body:         `{not json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockOtpSignuper(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSignupOtpHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/signup-otp", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
