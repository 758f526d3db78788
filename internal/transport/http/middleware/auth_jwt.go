package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Mazin-Fouad/ecommerce-api/internal/core/auth"
)

const (
	CtxUserID = "userId"
	CtxEmail  = "email"
)

// AuthJWT resolves the bearer credential to a user identity from the token
// claims alone. No storage read happens here, so protected read paths keep
// working when the database is down.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}
		c.Set(CtxUserID, claims.UID)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}
