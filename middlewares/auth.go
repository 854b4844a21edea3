package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/theoMich19/delivecrous/pkg/resp"
	"github.com/theoMich19/delivecrous/utils"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity on the context. A missing credential is 401, an invalid one
// is 403.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Token manquant")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Forbidden(c, "Token invalide")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}
