package http_requestid_middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const Header = "X-Request-ID"

// New tags every request with an id so the engine's log lines can be
// correlated per swipe/feed cycle.
func New() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(Header)
		if id == "" {
			id = uuid.New().String()
		}
		ctx.Set("request_id", id)
		ctx.Writer.Header().Set(Header, id)
		ctx.Next()
	}
}
