package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/config"
	"resumeforge/internal/generator"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// UploadResumeHandler handles POST /api/v1/resume/upload: a multipart upload
// of a JSON Resume file. The rendered PDF is saved under the artifact
// directory and its path returned, instead of streaming the file back.
func UploadResumeHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.GetGlobalLogger()

		logger.Info("Processing resume upload request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   "/api/v1/resume/upload",
			"method":     "POST",
		})

		fileHeader, err := c.FormFile("resume")
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_input", "Missing 'resume' file in multipart form", requestID))
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_input", "Failed to open uploaded file: "+err.Error(), requestID))
		}
		defer file.Close()

		body, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
				"invalid_input", "Failed to read uploaded file: "+err.Error(), requestID))
		}
		if len(body) > maxUploadSize {
			return c.JSON(http.StatusRequestEntityTooLarge, models.NewErrorResponse(
				"request_too_large", "Uploaded resume exceeds the size limit", requestID))
		}

		resume, errResp := decodeResumeBytes(body, requestID)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, *errResp)
		}

		opts := enhanceOptions(llmManager, c.FormValue("enhance"))

		result, err := generator.GeneratePDF(c.Request().Context(), cfg, llmManager, resume, opts)
		if err != nil {
			return pipelineErrorResponse(c, requestID, err)
		}

		if err := os.MkdirAll(cfg.Renderer.ArtifactDir, 0755); err != nil {
			return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
				"artifact_store_error", "Failed to create artifact directory: "+err.Error(), requestID))
		}

		artifact := filepath.Join(cfg.Renderer.ArtifactDir, utils.GenerateArtifactName())
		if err := os.WriteFile(artifact, result.PDF, 0644); err != nil {
			return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
				"artifact_store_error", "Failed to save artifact: "+err.Error(), requestID))
		}

		logger.Info("Resume upload rendered", map[string]interface{}{
			"request_id":      requestID,
			"artifact":        artifact,
			"enhanced":        result.Enhanced,
			"processing_time": result.Duration,
		})

		return c.JSON(http.StatusOK, models.UploadResponse{
			Success:        true,
			Artifact:       artifact,
			Enhanced:       result.Enhanced,
			RequestID:      requestID,
			ProcessingTime: result.Duration,
		})
	}
}

// maxUploadSize caps uploaded résumé files, matching the inline body limit.
const maxUploadSize = 1024 * 1024
