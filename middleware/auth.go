package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired verifies the Firebase ID token and sets "uid" in the
// request context. Requests without a valid token are rejected.
func AuthRequired(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다."})
			return
		}
		token, err := authClient.VerifyIDToken(c.Request.Context(), tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "유효하지 않은 토큰입니다."})
			return
		}
		c.Set("uid", token.UID)
		c.Next()
	}
}

// OptionalAuth sets "uid" when a valid token is present but lets
// anonymous requests through. Read endpoints use it: the projection
// differs per viewer but never requires one.
func OptionalAuth(authClient *auth.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.Next()
			return
		}
		token, err := authClient.VerifyIDToken(c.Request.Context(), tokenStr)
		if err != nil {
			// broken token on a public route degrades to anonymous
			c.Next()
			return
		}
		c.Set("uid", token.UID)
		c.Next()
	}
}
