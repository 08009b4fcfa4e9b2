package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/arfoundry/model-gateway/internal/facades"
	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/middlewares"
	"github.com/arfoundry/model-gateway/internal/models"
	"github.com/arfoundry/model-gateway/internal/services"
)

// maxUploadMemory bounds the in-memory portion of a multipart parse;
// larger uploads spill to disk.
const maxUploadMemory = 32 << 20

// ModelCreator defines the interface that the ingestion service must implement.
type ModelCreator interface {
	CreateModel(ctx context.Context, userID, modelName string, glb io.Reader) (*models.ModelAssets, error)
}

// CreateModelErrorResponse represents an error response for model creation
// swagger:model CreateModelErrorResponse
type CreateModelErrorResponse struct {
	// Error message
	// default: Model name is required
	Error string `json:"error"`
}

// NewCreateModelHandler returns an HTTP handler for the model ingestion pipeline.
// @Summary Ingest a GLB model
// @Description Stores the uploaded GLB, converts it to USDZ, generates a hosted viewer page and a QR code, and returns all four references.
// @Tags models
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param glbFile formData file true "GLB file"
// @Param name formData string true "Model name"
// @Success 200 {object} models.ModelAssets "Asset URLs and QR code"
// @Failure 400 {object} handlers.CreateModelErrorResponse "Missing file or unusable name"
// @Failure 502 {object} handlers.CreateModelErrorResponse "Conversion service failure"
// @Router /create-model [post]
func NewCreateModelHandler(svc ModelCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateModelErrorResponse{
				Error: "invalid multipart form",
			})
			return
		}

		file, _, err := r.FormFile("glbFile")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateModelErrorResponse{
				Error: "glbFile is required",
			})
			return
		}
		defer file.Close()

		name := r.FormValue("name")
		userID := middlewares.GetUserIDFromContext(r.Context())

		assets, err := svc.CreateModel(r.Context(), userID, name, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidModelName):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateModelErrorResponse{
					Error: "Model name is required",
				})
			case errors.Is(err, facades.ErrConversionUpstream),
				errors.Is(err, services.ErrEmptyConversion):
				logger.Log.Errorw("conversion failed", "err", err)
				w.WriteHeader(http.StatusBadGateway)
				json.NewEncoder(w).Encode(CreateModelErrorResponse{
					Error: "Conversion service failure",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateModelErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(assets)
	}
}
