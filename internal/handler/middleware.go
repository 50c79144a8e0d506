package handler

import (
	"net/http"
	"time"

	"event-partners-api/internal/auth"
	"event-partners-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireToken 檢查 x-api-token，不通過回 403
func RequireToken(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !verifier.Verify(c.GetHeader(auth.HeaderName)) {
			logger.WithComponent("handler").Warn("Forbidden",
				zap.String("path", c.FullPath()),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden resource"})
			return
		}
		c.Next()
	}
}

// RequestLogger 記錄每個請求的 method、path、status 與耗時
func RequestLogger(partner string) gin.HandlerFunc {
	log := logger.WithPartner("http", partner)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			log.Error("request", fields...)
			return
		}
		log.Info("request", fields...)
	}
}
