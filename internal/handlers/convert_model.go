package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/facades"
	"github.com/arfoundry/model-gateway/internal/logger"
)

// ModelConverter defines the interface for the pass-through conversion.
type ModelConverter interface {
	Convert(ctx context.Context, glb io.Reader) (io.ReadCloser, error)
}

// ConvertModelErrorResponse represents an error response for the pass-through conversion
// swagger:model ConvertModelErrorResponse
type ConvertModelErrorResponse struct {
	// Error message
	// default: Conversion service failure
	Error string `json:"error"`
}

// NewConvertModelHandler returns an HTTP handler that converts an uploaded GLB
// to USDZ and streams the result back without storing anything.
// @Summary Convert a GLB to USDZ
// @Description Proxies the uploaded file to the conversion service and streams the USDZ reply back.
// @Tags models
// @Accept multipart/form-data
// @Produce application/octet-stream
// @Param file formData file true "GLB file"
// @Success 200 {file} binary "USDZ stream"
// @Failure 400 {object} handlers.ConvertModelErrorResponse "Missing file"
// @Failure 502 {object} handlers.ConvertModelErrorResponse "Conversion service failure"
// @Router /convert-model [post]
func NewConvertModelHandler(svc ModelConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertModelErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ConvertModelErrorResponse{
				Error: "file is required",
			})
			return
		}
		defer file.Close()

		usdz, err := svc.Convert(r.Context(), file)
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrConversionUpstream):
				logger.Log.Errorw("conversion failed", "err", err)
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(ConvertModelErrorResponse{
					Error: "Conversion service failure",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ConvertModelErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}
		defer usdz.Close()

		w.Header().Set("Content-Type", "application/octet-stream")
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, usdz); err != nil {
			logger.Log.Errorw("streaming converted model failed", "err", err)
		}
	}
}
