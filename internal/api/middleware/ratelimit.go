package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"resumeforge/internal/config"
	"resumeforge/pkg/models"
)

// clientLimiter tracks the token bucket for one client IP
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a per-client-IP token bucket. Rendering spawns an
// external process per request, so unthrottled clients translate directly
// into subprocess pressure.
type RateLimiter struct {
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	mu      sync.Mutex
}

// NewRateLimiter creates a rate limiter from the configured requests/minute
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(float64(cfg.RateLimit.RequestsPerMinute) / 60.0),
		burst:   cfg.RateLimit.Burst,
	}

	go rl.cleanupRoutine()

	return rl
}

// Allow checks if a request from the given client IP is allowed
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, exists := rl.clients[ip]
	if !exists {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = client
	}
	client.lastSeen = time.Now()

	return client.limiter.Allow()
}

// cleanupRoutine drops buckets for clients idle longer than ten minutes
func (rl *RateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, client := range rl.clients {
			if time.Since(client.lastSeen) > 10*time.Minute {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns the echo middleware enforcing the limiter
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.Allow(c.RealIP()) {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusTooManyRequests, models.NewErrorResponse(
					"rate_limited",
					"Too many requests, slow down",
					requestID,
				))
			}
			return next(c)
		}
	}
}
