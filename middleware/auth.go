package middleware

import (
	"net/http"
	"strings"

	"quickcourt/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's user
// ID in the context. With required=false an absent or invalid token just
// leaves the request anonymous, so endpoints can attribute work to a user
// when one is signed in without forcing sign-in.
func JWTAuthMiddleware(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			if required {
				utils.JSONError(c, http.StatusUnauthorized, "authentication required")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		userID, err := utils.ExtractIDFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			if required {
				utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
