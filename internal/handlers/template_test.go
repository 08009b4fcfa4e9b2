package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/arfoundry/model-gateway/internal/services"
	"github.com/arfoundry/model-gateway/internal/storage"
)

// withURLParam injects a chi route parameter the way the router would.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListTemplatesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns stored pages", func(t *testing.T) {
		mockSvc := NewMockTemplateLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]string{"red_car-abc.html", "blue_car-def.html"}, nil)

		handler := NewListTemplatesHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/list-templates", nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var got ListTemplatesResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, []string{"red_car-abc.html", "blue_car-def.html"}, got.Templates)
	})

	t.Run("empty store yields empty array", func(t *testing.T) {
		mockSvc := NewMockTemplateLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, nil)

		handler := NewListTemplatesHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/list-templates", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"templates":[]}`, rr.Body.String())
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := NewMockTemplateLister(ctrl)
		mockSvc.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk failure"))

		handler := NewListTemplatesHandler(mockSvc)
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodGet, "/list-templates", nil))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestDeleteTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		param        string
		mockSetup    func(m *MockTemplateDeleter)
		expectedCode int
	}{
		{
			name:  "success",
			param: "red_car-abc.html",
			mockSetup: func(m *MockTemplateDeleter) {
				m.EXPECT().Delete(gomock.Any(), "red_car-abc.html").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "absent template",
			param: "ghost.html",
			mockSetup: func(m *MockTemplateDeleter) {
				m.EXPECT().Delete(gomock.Any(), "ghost.html").Return(services.ErrTemplateNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:  "invalid name",
			param: "..",
			mockSetup: func(m *MockTemplateDeleter) {
				m.EXPECT().Delete(gomock.Any(), "..").Return(storage.ErrInvalidName)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockTemplateDeleter(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewDeleteTemplateHandler(mockSvc)

			req := httptest.NewRequest(http.MethodDelete, "/delete-template/"+tt.param, nil)
			req = withURLParam(req, "name", tt.param)

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestTemplateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("streams html", func(t *testing.T) {
		page := "<!DOCTYPE html><html><body>viewer</body></html>"

		mockSvc := NewMockTemplateReader(ctrl)
		mockSvc.EXPECT().
			Read(gomock.Any(), "red_car-abc.html").
			Return(io.NopCloser(bytes.NewBufferString(page)), nil)

		handler := NewTemplateHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/template/red_car-abc.html", nil)
		req = withURLParam(req, "fileName", "red_car-abc.html")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
		assert.Equal(t, page, rr.Body.String())
	})

	t.Run("absent template", func(t *testing.T) {
		mockSvc := NewMockTemplateReader(ctrl)
		mockSvc.EXPECT().
			Read(gomock.Any(), "ghost.html").
			Return(nil, services.ErrTemplateNotFound)

		handler := NewTemplateHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/template/ghost.html", nil)
		req = withURLParam(req, "fileName", "ghost.html")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("traversal name maps to not found", func(t *testing.T) {
		mockSvc := NewMockTemplateReader(ctrl)
		mockSvc.EXPECT().
			Read(gomock.Any(), "..").
			Return(nil, storage.ErrInvalidName)

		handler := NewTemplateHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/template/..", nil)
		req = withURLParam(req, "fileName", "..")

		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
