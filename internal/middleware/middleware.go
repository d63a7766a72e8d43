package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "questlog/pkg/errors"
	"questlog/pkg/log"
	"questlog/pkg/response"
)

const RequestIDHeader = "X-Request-ID"

var (
	errUnauthorized    = pkgErrors.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	errTooManyRequests = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// RequestID tags the request context with the incoming X-Request-ID or a
// fresh UUID, and echoes it back.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// Logger writes one line per request.
func (m Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= http.StatusInternalServerError:
			m.l.Errorf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		case status >= http.StatusBadRequest:
			m.l.Warnf(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		default:
			m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
		}
	}
}

// Auth requires "Authorization: Bearer <access token>" when a token is configured.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.accessToken == "" {
			c.Next()
			return
		}

		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(m.accessToken)) != 1 {
			response.Error(c, errUnauthorized, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RateLimit throttles each client address independently.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}
		if !m.limiter.Allow(clientIP(c.Request)) {
			response.Error(c, errTooManyRequests, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
