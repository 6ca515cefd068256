package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/projects-hub/server/internal/telemetry"
)

// ZapLogger logs one structured line per request.
func ZapLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// OtelTracing creates a server span per API request.
func OtelTracing(serviceName string) gin.HandlerFunc {
	return telemetry.GinMiddleware(serviceName)
}

// TraceID exposes the active trace id as a response header so support can
// correlate a user report with the trace backend.
func TraceID() gin.HandlerFunc {
	return telemetry.TraceIDMiddleware()
}
