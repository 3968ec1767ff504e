package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/pkg/models"
)

const validResumeJSON = `{
	"basics": {
		"name": "Jane Doe",
		"email": "jane@example.com",
		"phone": "+15551234567",
		"summary": "Engineer."
	},
	"work": [
		{"name": "Acme", "position": "Dev", "startDate": "2020-01-01"}
	]
}`

const handlerTemplate = `cv:
  name: Placeholder
  sections: {}
design:
  theme: classic
  highlights:
    bullet: "-"
`

func handlerConfig(t *testing.T, rendererScript string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Template.Path = filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(cfg.Template.Path, []byte(handlerTemplate), 0644))

	binary := filepath.Join(t.TempDir(), "fake-rendercv")
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"+rendererScript), 0755))
	cfg.Renderer.Binary = binary
	cfg.Renderer.WorkDir = t.TempDir()
	cfg.Renderer.Timeout = 5 * time.Second
	cfg.LLM.Timeout = time.Second
	return cfg
}

func invokeGenerate(t *testing.T, cfg *config.Config, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/generate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := GeneratePDFHandler(cfg, llm.NewManager(cfg))
	require.NoError(t, handler(c))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestGenerateRejectsNonJSON(t *testing.T) {
	cfg := handlerConfig(t, "exit 0")

	rec := invokeGenerate(t, cfg, echo.MIMETextPlain, validResumeJSON)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeError(t, rec)
	require.Equal(t, "invalid_input", resp.Error)
	require.NotEmpty(t, resp.RequestID)
}

func TestGenerateRejectsMissingBasics(t *testing.T) {
	cfg := handlerConfig(t, "exit 0")

	rec := invokeGenerate(t, cfg, echo.MIMEApplicationJSON, `{"work": []}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_input", decodeError(t, rec).Error)
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	cfg := handlerConfig(t, "exit 0")

	rec := invokeGenerate(t, cfg, echo.MIMEApplicationJSON, `{"basics": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "invalid_input", decodeError(t, rec).Error)
}

func TestGenerateSuccessReturnsPDF(t *testing.T) {
	cfg := handlerConfig(t, `printf '%%PDF-1.4 rendered' > "$4/Jane_Doe_CV.pdf"`)

	rec := invokeGenerate(t, cfg, echo.MIMEApplicationJSON, validResumeJSON)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "resume.pdf")
	require.Equal(t, "%PDF", rec.Body.String()[:4])
}

func TestGenerateRendererMissing(t *testing.T) {
	cfg := handlerConfig(t, "exit 0")
	cfg.Renderer.Binary = "no-such-renderer-on-path"

	rec := invokeGenerate(t, cfg, echo.MIMEApplicationJSON, validResumeJSON)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeError(t, rec)
	require.Equal(t, "renderer_missing", resp.Error)
	require.Contains(t, resp.Message, "pipx install rendercv")
}

func TestGenerateRenderFailureCarriesDiagnostics(t *testing.T) {
	cfg := handlerConfig(t, `
echo "stage one ok"
echo "LaTeX blew up" >&2
exit 1
`)

	rec := invokeGenerate(t, cfg, echo.MIMEApplicationJSON, validResumeJSON)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeError(t, rec)
	require.Equal(t, "render_failed", resp.Error)
	require.Contains(t, resp.Stdout, "stage one ok")
	require.Contains(t, resp.Stderr, "LaTeX blew up")
}

func TestGenerateTimeout(t *testing.T) {
	cfg := handlerConfig(t, "exec sleep 5")
	cfg.Renderer.Timeout = 100 * time.Millisecond

	rec := invokeGenerate(t, cfg, echo.MIMEApplicationJSON, validResumeJSON)
	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	require.Equal(t, "render_timeout", decodeError(t, rec).Error)
}

func TestEnhanceOptionsOverride(t *testing.T) {
	cfg := &config.Config{}
	manager := llm.NewManager(cfg) // no provider, Enabled() == false

	tests := []struct {
		override string
		expected bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		opts := enhanceOptions(manager, tt.override)
		require.Equal(t, tt.expected, opts.Enhance, "override %q", tt.override)
	}
}
