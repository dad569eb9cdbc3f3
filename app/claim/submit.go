// Package claim contains the ownership claim endpoints
package claim

import (
	"errors"
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type submitBody struct {
	ItemID   int    `json:"itemId"`
	ItemType string `json:"itemType"`
	Reason   string `json:"reason"`
}

// Submit files a claim against a lost or found item.
func Submit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data submitBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.ItemType != model.ItemTypeLost && data.ItemType != model.ItemTypeFound {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "itemType must be LOST or FOUND",
			"requestID": requestID,
		})
		return
	}

	if len(data.Reason) > 1000 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Reason is too long",
			"requestID": requestID,
		})
		return
	}

	// The claimed item must exist in the table the type points at
	var err error
	if data.ItemType == model.ItemTypeLost {
		err = d.DB.First(&model.LostItem{}, "id = ?", data.ItemID).Error
	} else {
		err = d.DB.First(&model.FoundItem{}, "id = ?", data.ItemID).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Item not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check claimed item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	claim := model.Claim{
		ItemID:   data.ItemID,
		ItemType: data.ItemType,
		UserID:   userID,
		Reason:   data.Reason,
	}

	if err := d.DB.Create(&claim).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create claim", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Claim submitted successfully",
		"requestID": requestID,
	})
}
