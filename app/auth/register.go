// Package auth contains the registration, login and session endpoints
package auth

import (
	"errors"
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/internal/service"
	"mupro/lostfound-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Register(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.NameValidator(data.Name); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	res, err := d.Auth.Register(data.Name, data.Email, data.Password, model.RoleUser)
	if err != nil {
		writeRegisterError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func writeRegisterError(c *gin.Context, requestID string, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "This email is already registered. Please login or use a different email",
			"requestID": requestID,
		})
	case errors.Is(err, service.ErrMailer):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to send verification email. Please try again later",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send OTP mail", zap.Error(err), zap.String("requestID", requestID))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to register user", zap.Error(err), zap.String("requestID", requestID))
	}
}
