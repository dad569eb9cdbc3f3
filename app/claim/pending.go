package claim

import (
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type claimResponse struct {
	ID           int    `json:"id"`
	ItemID       int    `json:"itemId"`
	ItemType     string `json:"itemType"`
	ClaimerEmail string `json:"claimerEmail"`
	Reason       string `json:"reason"`
	Approved     bool   `json:"approved"`
}

// Pending lists every claim still waiting for an admin decision.
func Pending(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var claims []model.Claim

	err := d.DB.Preload("Claimer").
		Where("approved = ?", false).
		Order("created_at").
		Find(&claims).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch pending claims", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	out := make([]claimResponse, 0, len(claims))
	for _, cl := range claims {
		out = append(out, claimResponse{
			ID:           cl.ID,
			ItemID:       cl.ItemID,
			ItemType:     cl.ItemType,
			ClaimerEmail: cl.Claimer.Email,
			Reason:       cl.Reason,
			Approved:     cl.Approved,
		})
	}

	c.JSON(http.StatusOK, out)
}
