package auth

import (
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/validators"

	"github.com/gin-gonic/gin"
)

// RegisterAdmin creates an ADMIN account. The route is gated behind an
// existing admin, the role is forced regardless of what was sent, and
// admin accounts never go through the OTP gate.
func RegisterAdmin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
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

	res, err := d.Auth.Register(data.Name, data.Email, data.Password, model.RoleAdmin)
	if err != nil {
		writeRegisterError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
