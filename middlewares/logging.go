// request access log

package middlewares

import (
	"fmt"
	"log"
	"time"

	"CommentCase/utils/redislog"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request and,
// when rlog is set, mirrors 5xx responses into the Redis log list.
func RequestLogger(rlog *redislog.Logger) gin.HandlerFunc {
	rlog = rlog.With("http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // read before c.Next(); handlers may rewrite it
		c.Next()
		status := c.Writer.Status()
		elapsed := time.Since(start)
		log.Printf("%s %s %d %s", c.Request.Method, path, status, elapsed)
		if status >= 500 {
			rlog.Error("request failed", map[string]string{
				"method":  c.Request.Method,
				"path":    path,
				"status":  fmt.Sprint(status),
				"elapsed": elapsed.String(),
			})
		}
	}
}
