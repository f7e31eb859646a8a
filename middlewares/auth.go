// validates a bearer JWT on write endpoints and stores its subject in the Gin context.

package middlewares

import (
	"net/http"
	"strings"

	"CommentCase/global"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Auth returns a middleware that requires "Authorization: Bearer <token>" signed
// with jwtSecret (HS256). An empty secret disables the check.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSecret == "" {
			c.Next()
			return
		}
		raw, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		t, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !t.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if sub, err := t.Claims.GetSubject(); err == nil && sub != "" {
			c.Set(global.CtxSubjectKey, sub)
		}
		c.Next()
	}
}
