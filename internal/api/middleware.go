package api

import (
	"alcyxob/exercise-tracker/internal/config"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Constants for context keys
const (
	ContextLoggerKey = "logger"
	RequestIDHeader  = "X-Request-ID"
)

// RequestLogger tags each request with an id and logs its outcome.
// An incoming X-Request-ID is reused so ids survive a proxy hop.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		entry := log.WithFields(logrus.Fields{
			"http.req.path":   c.Request.URL.Path,
			"http.req.method": c.Request.Method,
			"http.req.id":     requestID,
		})
		c.Set(ContextLoggerKey, entry)

		c.Next()

		entry = entry.WithFields(logrus.Fields{
			"http.resp.took_ms": time.Since(start).Milliseconds(),
			"http.resp.status":  c.Writer.Status(),
			"http.resp.bytes":   c.Writer.Size(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("request failed")
			return
		}
		entry.Debug("request complete")
	}
}

// CORS allows every origin unless the config narrows the list.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	if len(cfg.AllowedOrigins) == 0 {
		return cors.Default()
	}
	c := cors.DefaultConfig()
	c.AllowOrigins = cfg.AllowedOrigins
	return cors.New(c)
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// loggerFromContext returns the request-scoped logger set by RequestLogger.
func loggerFromContext(c *gin.Context) logrus.FieldLogger {
	if v, ok := c.Get(ContextLoggerKey); ok {
		if entry, ok := v.(logrus.FieldLogger); ok {
			return entry
		}
	}
	return logrus.StandardLogger()
}
