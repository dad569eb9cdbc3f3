package service

import (
	"bytes"
	"fmt"

	"mupro/lostfound-api/internal/model"

	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

// ApprovedClaimsPDF renders every approved claim into a simple one-column
// PDF report for the admin download endpoint.
func ApprovedClaimsPDF(db *gorm.DB) ([]byte, error) {
	var claims []model.Claim

	err := db.Preload("Claimer").
		Where("approved = ?", true).
		Order("id").
		Find(&claims).
		Error
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Approved claims")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)

	for _, claim := range claims {
		pdf.Cell(0, 6, fmt.Sprintf("Claim #%d  (%s item %d)", claim.ID, claim.ItemType, claim.ItemID))
		pdf.Ln(6)
		pdf.Cell(0, 6, "Claimer: "+claim.Claimer.Email)
		pdf.Ln(6)
		pdf.MultiCell(0, 6, "Reason: "+claim.Reason, "", "L", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
