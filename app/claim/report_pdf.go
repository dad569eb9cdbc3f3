package claim

import (
	"net/http"

	"mupro/lostfound-api/internal"
	"mupro/lostfound-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReportPDF streams a PDF of all approved claims (admin only, wired in
// the router).
func ReportPDF(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	pdf, err := service.ApprovedClaimsPDF(d.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to generate report",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate claims PDF", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="approved_claims.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
