package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/requestdata"
)

// RequestLog writes one structured line per request after the handler chain
// finishes. It replaces gin's default console logger.
func RequestLog(baseLog *logger.Logger) gin.HandlerFunc {
	log := baseLog.With("middleware", "RequestLog")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
			fields = append(fields, "request_id", rd.RequestID)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		if c.Writer.Status() >= 500 {
			log.Error("request completed", fields...)
			return
		}
		log.Info("request completed", fields...)
	}
}
