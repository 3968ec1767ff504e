package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/validation"
	"resumeforge/internal/config"
	"resumeforge/internal/generator"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/rendercv"
	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

var resumeValidator = validator.New()

// GeneratePDFHandler handles POST /api/v1/resume/generate (and the legacy
// /generate_pdf alias): inline JSON Resume in, PDF download out.
func GeneratePDFHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := requestID(c)
		logger := logging.GetGlobalLogger()

		logger.Info("Processing resume generation request", map[string]interface{}{
			"request_id": requestID,
			"endpoint":   c.Path(),
			"method":     "POST",
		})

		resume, errResp := decodeResume(c, requestID)
		if errResp != nil {
			return c.JSON(http.StatusBadRequest, *errResp)
		}

		opts := enhanceOptions(llmManager, c.QueryParam("enhance"))

		result, err := generator.GeneratePDF(c.Request().Context(), cfg, llmManager, resume, opts)
		if err != nil {
			return pipelineErrorResponse(c, requestID, err)
		}

		logger.Info("Resume generation completed", map[string]interface{}{
			"request_id":      requestID,
			"enhanced":        result.Enhanced,
			"processing_time": result.Duration,
		})

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
		return c.Blob(http.StatusOK, "application/pdf", result.PDF)
	}
}

// decodeResume validates and decodes the inline JSON body. It returns a ready
// error response on any client-side problem.
func decodeResume(c echo.Context, requestID string) (*models.Resume, *models.ErrorResponse) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.Contains(contentType, echo.MIMEApplicationJSON) {
		resp := models.NewErrorResponse("invalid_input", "Request must be JSON", requestID)
		return nil, &resp
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		resp := models.NewErrorResponse("invalid_input", "Failed to read request body: "+err.Error(), requestID)
		return nil, &resp
	}

	return decodeResumeBytes(body, requestID)
}

func decodeResumeBytes(body []byte, requestID string) (*models.Resume, *models.ErrorResponse) {
	// Schema check first: it produces far better messages than a decode error
	if err := validation.ValidateResumeJSON(body); err != nil {
		resp := models.NewErrorResponse("invalid_input", err.Error(), requestID)
		return nil, &resp
	}

	var resume models.Resume
	if err := json.Unmarshal(body, &resume); err != nil {
		resp := models.NewErrorResponse("invalid_input", "Invalid request body: "+err.Error(), requestID)
		return nil, &resp
	}

	if err := resumeValidator.Struct(&resume); err != nil {
		resp := models.NewErrorResponse("invalid_input", "Resume validation failed: "+err.Error(), requestID)
		return nil, &resp
	}

	return &resume, nil
}

// enhanceOptions derives the per-request enhancement flag: on when a provider
// is configured, overridable per request.
func enhanceOptions(llmManager *llm.Manager, override string) models.GenerateOptions {
	opts := models.GenerateOptions{Enhance: llmManager.Enabled()}
	switch override {
	case "true", "1":
		opts.Enhance = true
	case "false", "0":
		opts.Enhance = false
	}
	return opts
}

// pipelineErrorResponse maps pipeline errors onto the documented error
// categories. Renderer diagnostics travel back to the caller.
func pipelineErrorResponse(c echo.Context, requestID string, err error) error {
	logger := logging.GetGlobalLogger()

	var missingField *rendercv.MissingFieldError
	if errors.As(err, &missingField) {
		return c.JSON(http.StatusBadRequest, models.NewErrorResponse(
			"invalid_input", missingField.Error(), requestID))
	}

	logger.Error("Resume generation failed", map[string]interface{}{
		"request_id": requestID,
		"error":      err.Error(),
	})

	var renderErr *rendercv.RenderError
	switch {
	case errors.Is(err, rendercv.ErrTemplateLoad):
		return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"template_load_error", err.Error(), requestID))

	case errors.Is(err, rendercv.ErrRendererMissing):
		return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"renderer_missing",
			"RenderCV is not installed; install it with 'pipx install rendercv'",
			requestID))

	case errors.Is(err, rendercv.ErrRenderTimeout):
		return c.JSON(http.StatusGatewayTimeout, models.NewErrorResponse(
			"render_timeout", err.Error(), requestID))

	case errors.Is(err, rendercv.ErrArtifactNotProduced):
		return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"artifact_not_produced", err.Error(), requestID))

	case errors.As(err, &renderErr):
		resp := models.ErrorResponse{
			Error:     "render_failed",
			Message:   renderErr.Error(),
			Stdout:    renderErr.Stdout,
			Stderr:    renderErr.Stderr,
			RequestID: requestID,
			Timestamp: time.Now(),
		}
		return c.JSON(http.StatusInternalServerError, resp)

	default:
		return c.JSON(http.StatusInternalServerError, models.NewErrorResponse(
			"internal_error", err.Error(), requestID))
	}
}

// requestID returns the ID set by the validation middleware, falling back to
// a fresh one for directly-invoked handlers.
func requestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
