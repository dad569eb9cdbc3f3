package auth

import (
	"errors"
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logout revokes the session token the request authenticated with. The
// auth middleware already stashed the raw token in the context.
func Logout(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	tokenStr := c.MustGet("token").(string)

	if err := d.Auth.Logout(tokenStr); err != nil {
		if errors.Is(err, service.ErrTokenNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Token not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to log out user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Logged out successfully",
		"requestID": requestID,
	})
}
