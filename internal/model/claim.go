package model

import "time"

const (
	ItemTypeLost  = "LOST"
	ItemTypeFound = "FOUND"
)

// Claim links a user to a lost or found item they say is theirs. ItemType
// tells which table ItemID points into.
type Claim struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	ItemID    int    `gorm:"not null"`
	ItemType  string `gorm:"not null"`
	UserID    string `gorm:"index"`
	Reason    string `gorm:"size:1000"`
	Approved  bool   `gorm:"default:false"`
	CreatedAt time.Time

	Claimer User `gorm:"foreignKey:UserID"`
}
