package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tanvir/campushub/internal/pkg/logger"
)

// RequestLogger logs each request with method, path, status and latency
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		path := ctx.Request.URL.Path

		ctx.Next()

		event := logger.Info()
		if ctx.Writer.Status() >= 500 {
			event = logger.Error()
		} else if ctx.Writer.Status() >= 400 {
			event = logger.Warn()
		}
		event.
			Str("method", ctx.Request.Method).
			Str("path", path).
			Int("status", ctx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("client_ip", ctx.ClientIP()).
			Msg("Request handled")
	}
}
