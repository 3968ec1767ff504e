package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// TimeoutConfig returns timeout middleware configuration
func TimeoutConfig(timeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	})
}

// SelectiveTimeoutConfig applies the default timeout everywhere except the
// render endpoints, which block on the external renderer (and optionally the
// LLM) and get the longer budget.
func SelectiveTimeoutConfig(defaultTimeout, renderTimeout time.Duration) echo.MiddlewareFunc {
	slow := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: renderTimeout})
	fast := middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: defaultTimeout})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isRenderPath(c.Path()) {
				return slow(next)(c)
			}
			return fast(next)(c)
		}
	}
}

func isRenderPath(path string) bool {
	return path == "/generate_pdf" ||
		strings.HasPrefix(path, "/api/v1/resume/")
}
