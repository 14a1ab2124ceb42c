package middleware

import (
	"net/http"
	"strings"

	"recipehub/util"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthenticateJWT verifies the bearer token and stores the authenticated
// user's id in the gin context.
func AuthenticateJWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := util.ValidateJWT(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalJWT sets the user id when a valid bearer token is present but never
// rejects the request. Used on read endpoints open to anonymous clients whose
// bodies carry viewer-relative flags.
func OptionalJWT(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := util.ValidateJWT(tokenString, secret); err == nil {
				c.Set(userIDKey, claims.UserID)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by AuthenticateJWT.
// The second result is false on unauthenticated requests.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
