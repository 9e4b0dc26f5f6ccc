package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"eduhub/web/api"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, X-Body-Encoding, "+api.TokenHeader)

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Every script is served from the embedded static files
	csp := []string{
		"default-src 'self'",
		"script-src 'self'",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// RateLimiter counts requests per client in one-minute windows
type RateLimiter struct {
	mu       sync.Mutex
	limit    int
	visitors map[string]*visitor
}

type visitor struct {
	windowStart time.Time
	count       int
}

// NewRateLimiter allows limit requests per client per minute. Zero allows everything.
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{limit: limit, visitors: make(map[string]*visitor)}
}

// Allow records a request from client at now and reports whether it is within the limit
func (rl *RateLimiter) Allow(client string, now time.Time) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Drop clients whose window has passed
	for addr, v := range rl.visitors {
		if now.Sub(v.windowStart) >= time.Minute {
			delete(rl.visitors, addr)
		}
	}

	v, exists := rl.visitors[client]
	if !exists {
		rl.visitors[client] = &visitor{windowStart: now, count: 1}
		return true
	}
	v.count++
	return v.count <= rl.limit
}

// Limit wraps h so that clients over the limit get 429
func (rl *RateLimiter) Limit(h rweb.Handler) rweb.Handler {
	return func(c rweb.Context) error {
		ip := clientIP(c)
		if !rl.Allow(ip, time.Now()) {
			logger.Info("Rate limit exceeded", "ip", ip, "path", c.Request().Path())
			c.SetStatus(http.StatusTooManyRequests)
			return c.WriteHTML("<h1>Too many requests</h1>")
		}
		return h(c)
	}
}

func clientIP(c rweb.Context) string {
	if ip := c.Request().Header("X-Forwarded-For"); ip != "" {
		return strings.TrimSpace(strings.Split(ip, ",")[0])
	}
	if ip := c.Request().Header("X-Real-IP"); ip != "" {
		return ip
	}
	return "unknown"
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}
