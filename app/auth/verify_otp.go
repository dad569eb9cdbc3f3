package auth

import (
	"errors"
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type verifyOtpBody struct {
	Email string `json:"email"`
	Otp   string `json:"otp"`
}

func VerifyOtp(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data verifyOtpBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Email == "" || data.Otp == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email and otp fields can't be empty",
			"requestID": requestID,
		})
		return
	}

	res, err := d.Auth.VerifyOtp(data.Email, data.Otp)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrInvalidOtp):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid verification code",
				"requestID": requestID,
			})
		case errors.Is(err, service.ErrOtpExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Verification code has expired. Please register again to receive a new one",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to verify otp", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
