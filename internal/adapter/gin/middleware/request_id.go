package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"user-rest-service/pkg/logger"
)

// RequestIDHeader is the header carrying the request ID in responses
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a UUID, stores it on the request
// context for downstream log correlation, and echoes it in the
// response header. An ID supplied by the caller is reused.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}
