package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/gameplatform/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// LoggerMiddleware logs each HTTP request in structured form
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		requestID := ""
		if id, exists := c.Get("request_id"); exists {
			requestID = id.(string)
		}

		log.Info("HTTP Request Processed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", c.Writer.Status()),
			zap.String("latency", time.Since(start).String()),
			zap.Int("response_size", c.Writer.Size()),
			zap.String("request_id", requestID))
	}
}
