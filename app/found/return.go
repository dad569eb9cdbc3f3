package found

import (
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Return marks a found item as returned to its owner (admin only, wired
// in the router).
func Return(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	res := d.DB.Model(&model.FoundItem{}).
		Where("id = ?", c.Param("id")).
		Update("returned", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to mark found item returned", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Found item not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Item marked as returned",
		"requestID": requestID,
	})
}
