package model

import "time"

// Token is a ledger entry for one issued JWT, not the decoded token itself.
// Rows are never deleted; revocation flips both flags so the row keeps
// working as an audit trail. A token authenticates only while both flags
// are false and its embedded expiry hasn't passed.
type Token struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Token     string `gorm:"uniqueIndex; not null"`
	UserID    string `gorm:"index"`
	Revoked   bool   `gorm:"default:false"`
	Expired   bool   `gorm:"default:false"`
	CreatedAt time.Time
}
