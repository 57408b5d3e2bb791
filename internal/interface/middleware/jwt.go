package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storelab/ecommerce-api/pkg/helpers"
	"github.com/storelab/ecommerce-api/pkg/response"
)

const (
	CtxUserIDKey   = "userID"
	CtxUserNameKey = "userName"
)

// RequireAuth validates the bearer token from the Authorization header and
// injects the subject's id and name into the Gin context. Verification is
// purely local: signature plus expiry, no session lookup.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Message(c, http.StatusUnauthorized, "missing token")
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserNameKey, claims.Name)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	if strings.HasPrefix(h, "Bearer ") || strings.HasPrefix(h, "bearer ") {
		return strings.TrimSpace(h[len("Bearer "):])
	}
	// Clients may also send the raw token without the Bearer prefix.
	return strings.TrimSpace(h)
}
