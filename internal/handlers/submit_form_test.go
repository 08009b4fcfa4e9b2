package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arfoundry/model-gateway/internal/services"
)

func TestSubmitFormHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockFormSubmitter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"name":"John Doe","email":"john@example.com","message":"hello"}`,
			mockSetup: func(m *MockFormSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "John Doe", "john@example.com", "hello").
					Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"message": "Message received"},
		},
		{
			name: "missing fields",
			body: `{"name":"","email":"","message":""}`,
			mockSetup: func(m *MockFormSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "", "", "").
					Return(services.ErrMissingFields)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "All fields are required"},
		},
		{
			name:         "invalid json",
			body:         `{not json}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
		{
			name: "internal error",
			body: `{"name":"John Doe","email":"john@example.com","message":"hello"}`,
			mockSetup: func(m *MockFormSubmitter) {
				m.EXPECT().
					Submit(gomock.Any(), "John Doe", "john@example.com", "hello").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFormSubmitter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSubmitFormHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/submit-form", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var got map[string]string
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

func TestLivenessHandler(t *testing.T) {
	handler := NewLivenessHandler()

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"model-gateway is up"}`, rr.Body.String())
}
