package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// RequestID شناسه درخواست را از هدر می‌خواند یا یک UUID جدید می‌سازد
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.Must(uuid.NewV4()).String()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
