package auth

import (
	"fmt"
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/internal/service"
	"mupro/lostfound-api/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type forgotPasswordBody struct {
	Email string `json:"email"`
}

// ForgotPassword sends a reset mail when the address is known. The reset
// flow behind the link is not implemented yet; this endpoint only exists
// so the frontend form has something to talk to.
// TODO: persist the reset token and add the matching /reset-password endpoint
func ForgotPassword(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	email := service.NormalizeEmail(data.Email)

	var count int64
	if err := d.DB.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if count > 0 {
		link := fmt.Sprintf("https://%s/reset-password?token=%s",
			viper.GetString("host.domain"), util.RandStr(32))

		if err := d.Mailer.SendPasswordReset(email, link); err != nil {
			zap.L().Error("Failed to send reset mail", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	// Same response whether or not the account exists
	c.JSON(http.StatusOK, gin.H{
		"message":   "If that email is registered, a reset link is on its way",
		"requestID": requestID,
	})
}
