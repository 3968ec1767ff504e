package routes

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/llm"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	e.Use(middleware.NewRateLimiter(cfg).Middleware())
	// Render endpoints block on the external renderer and get a larger budget
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.Renderer.Timeout+30*time.Second))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(cfg, llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(cfg, llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("/generate", handlers.GeneratePDFHandler(cfg, llmManager))
			resume.POST("/upload", handlers.UploadResumeHandler(cfg, llmManager))
		}
	}

	// Legacy alias kept for clients of the original endpoint
	e.POST("/generate_pdf", handlers.GeneratePDFHandler(cfg, llmManager))

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": "Resumeforge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
