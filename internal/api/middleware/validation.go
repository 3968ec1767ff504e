package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"resumeforge/pkg/models"
	"resumeforge/pkg/utils"
)

// maxBodySize caps inbound request bodies; résumé documents are small.
const maxBodySize = 1024 * 1024 // 1MB

// RequestValidation middleware tags every request with an ID and rejects
// oversized bodies before any handler work happens.
func RequestValidation() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost {
				if c.Request().ContentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.NewErrorResponse(
						"request_too_large",
						"Request body too large",
						requestID,
					))
				}
			}

			return next(c)
		}
	}
}
