package lost

import (
	"errors"
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Fetch returns one lost item by ID.
func Fetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var item model.LostItem

	err := d.DB.Preload("ReportedBy").First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Lost item not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch lost item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, toResponse(&item))
}

// FetchAll returns every reported lost item, newest first.
func FetchAll(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var items []model.LostItem

	err := d.DB.Preload("ReportedBy").Order("created_at desc").Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch lost items", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	out := make([]lostItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toResponse(&items[i]))
	}

	c.JSON(http.StatusOK, out)
}
