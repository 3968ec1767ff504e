package handlers

import (
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/config"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/pkg/models"
)

var startTime = time.Now()

const version = "1.0.0"

// HealthHandler handles health check requests
func HealthHandler(c echo.Context) error {
	logger := logging.GetGlobalLogger()
	logger.Debug("Health check requested", map[string]interface{}{"request_id": requestID(c)})

	response := models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
		Checks: map[string]string{
			"api": "ok",
		},
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessHandler reports whether the service can actually render: the
// renderer binary must resolve and the base template must be readable.
func ReadinessHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		checks := map[string]string{"api": "ok"}
		status := "ready"
		code := http.StatusOK

		if _, err := exec.LookPath(cfg.Renderer.Binary); err != nil {
			checks["renderer"] = "missing: " + cfg.Renderer.Binary
			status = "not_ready"
			code = http.StatusServiceUnavailable
		} else {
			checks["renderer"] = "ok"
		}

		if _, err := os.Stat(cfg.Template.Path); err != nil {
			checks["template"] = "unreadable: " + cfg.Template.Path
			status = "not_ready"
			code = http.StatusServiceUnavailable
		} else {
			checks["template"] = "ok"
		}

		if llmManager.Enabled() {
			checks["llm"] = "ok"
		} else {
			// Degraded but serviceable: requests render without enhancement
			checks["llm"] = "disabled"
		}

		return c.JSON(code, models.HealthResponse{
			Status:    status,
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks:    checks,
		})
	}
}

// LivenessHandler handles liveness probe requests
func LivenessHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   version,
		Uptime:    time.Since(startTime),
	})
}

// StatusHandler provides detailed service status
func StatusHandler(cfg *config.Config, llmManager *llm.Manager) echo.HandlerFunc {
	return func(c echo.Context) error {
		enhancement := "disabled"
		if llmManager.Enabled() {
			enhancement = cfg.LLM.Provider
		}

		return c.JSON(http.StatusOK, models.HealthResponse{
			Status:    "operational",
			Timestamp: time.Now(),
			Version:   version,
			Uptime:    time.Since(startTime),
			Checks: map[string]string{
				"api":         "operational",
				"renderer":    cfg.Renderer.Binary,
				"enhancement": enhancement,
			},
		})
	}
}
