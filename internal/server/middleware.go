package server

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/katalvlaran/hungarian/internal/metrics"
	"golang.org/x/time/rate"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

const ctxRequestID = "request_id"

// recovery turns a panic into a logged 500.
func recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "panic recovered",
					"error", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", c.GetString(ctxRequestID),
					"stack", string(debug.Stack()),
				)
				failure(c, http.StatusInternalServerError, "internal server error")
			}
		}()
		c.Next()
	}
}

// requestID keeps an incoming X-Request-ID or assigns a UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// requestLogger logs one line per request after it completes.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.InfoContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(ctxRequestID),
		)
	}
}

// rateLimit applies one token bucket to all requests; a zero limit disables it.
func rateLimit(limit float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst < 1 {
		burst = 1
	}
	l := rate.NewLimiter(rate.Limit(limit), burst)

	return func(c *gin.Context) {
		if !l.Allow() {
			logger.WarnContext(c.Request.Context(), "request rejected by rate limiter", "path", c.Request.URL.Path)
			failure(c, http.StatusTooManyRequests, "too many requests")
			return
		}
		c.Next()
	}
}

// maxBodyBytes rejects declared oversize bodies early and caps the rest.
func maxBodyBytes(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}
		if c.Request.ContentLength > limit {
			failure(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// httpMetrics records method, route template, status and latency.
func httpMetrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
