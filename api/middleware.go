package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeaderKey = "X-Request-Id"

// requestID tags every response with a request id, honoring one supplied by
// the caller
func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeaderKey)

		if id == "" {
			id = uuid.NewString()
		}

		ctx.Header(requestIDHeaderKey, id)

		ctx.Next()
	}
}
