// Package lost contains the lost item report endpoints
package lost

import (
	"net/http"
	"time"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/model"
	"mupro/lostfound-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reporter struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type lostItemResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	LostDate    time.Time `json:"lostDate"`
	Resolved    bool      `json:"resolved"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	ReportedBy  reporter  `json:"reportedBy"`
}

func toResponse(item *model.LostItem) lostItemResponse {
	return lostItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Location:    item.Location,
		LostDate:    item.LostDate,
		Resolved:    item.Resolved,
		ImageURL:    item.ImagePath,
		ReportedBy: reporter{
			ID:    item.ReportedBy.ID,
			Name:  item.ReportedBy.Name,
			Email: item.ReportedBy.Email,
		},
	}
}

// Report files a new lost item from a multipart form with an optional
// image attachment.
func Report(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	title := c.PostForm("title")
	description := c.PostForm("description")
	location := c.PostForm("location")

	if err := validators.ItemValidator(title, description); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	lostDate := time.Now()
	if raw := c.PostForm("lost_date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "lost_date must be RFC3339",
				"requestID": requestID,
			})
			return
		}
		lostDate = parsed
	}

	var imagePath string

	fh, err := c.FormFile("image")
	if err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to open multipart file", zap.Error(err), zap.String("requestID", requestID))
			return
		}
		defer f.Close()

		imagePath, err = d.Images.Save(c.Request.Context(), fh.Filename, f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to store image",
				"requestID": requestID,
			})

			zap.L().Error("Failed to store item image", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	item := model.LostItem{
		Title:       title,
		Description: description,
		Location:    location,
		LostDate:    lostDate,
		ImagePath:   imagePath,
		UserID:      userID,
	}

	if err := d.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create lost item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.DB.Preload("ReportedBy").First(&item, item.ID).Error; err != nil {
		zap.L().Warn("Failed to reload lost item reporter", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, toResponse(&item))
}
