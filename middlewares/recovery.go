// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"log"
	"net/http"

	"CommentCase/utils/redislog"

	"github.com/gin-gonic/gin"
)

// Recovery responds 500 {"error":"internal error"} when a handler panics.
func Recovery(rlog *redislog.Logger) gin.HandlerFunc {
	rlog = rlog.With("http")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[panic] %v", r)
				rlog.Errorf("panic: %v", map[string]string{"path": c.Request.URL.Path}, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
		}()
		c.Next()
	}
}
