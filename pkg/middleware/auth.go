// Package middleware contains any custom middleware used in the app
package middleware

import (
	"net/http"
	"strings"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewAuthMiddleware gates a route behind a valid bearer token. The token
// must carry a good signature and unexpired claims AND still be active in
// the ledger; either check failing leaves the request anonymous and
// rejected. On success the caller's identity lands in the context.
func NewAuthMiddleware(d *internal.Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr := bearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Missing bearer token",
				"requestID": requestID,
			})
			return
		}

		identity, err := d.Auth.Authenticate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authorization token invalid",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", identity.UserID)
		c.Set("email", identity.Email)
		c.Set("role", identity.Role)
		c.Set("token", tokenStr)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role doesn't match.
// Must run after the auth middleware.
func RequireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		if c.MustGet("role").(model.Role) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Insufficient permissions",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}

	return strings.TrimPrefix(header, "Bearer ")
}
