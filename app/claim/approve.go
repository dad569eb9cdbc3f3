package claim

import (
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Approve accepts a pending claim (admin only, wired in the router).
func Approve(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	res := d.DB.Model(&model.Claim{}).
		Where("id = ?", c.Param("id")).
		Update("approved", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to approve claim", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Claim not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Claim approved",
		"requestID": requestID,
	})
}
