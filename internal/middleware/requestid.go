package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/marketlens-backend/internal/requestdata"
)

const requestIDHeader = "X-Request-ID"

// RequestID mints a short correlation token for every request, stores it in
// the request context and echoes it in the response header. An incoming
// X-Request-ID is honored so callers can thread their own token through.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" {
			id = uuid.New().String()[:8]
		}
		ctx := requestdata.WithRequestData(c.Request.Context(), &requestdata.RequestData{RequestID: id})
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
