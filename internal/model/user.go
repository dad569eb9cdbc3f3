// Package model contains the gorm entities shared across the application
package model

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is the credential record. Emails are stored trimmed and lowercased,
// so lookups are case-insensitive by construction. Enabled flips to true
// either immediately (admin-created accounts, or deployments with email
// verification disabled) or once the OTP challenge is passed.
type User struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex; not null"`
	PasswordHash string `gorm:"not null"`
	Role         Role   `gorm:"default:USER"`
	Enabled      bool   `gorm:"default:false"`

	// At most one outstanding OTP challenge per user, overwritten on
	// re-issue and cleared after a successful verification.
	Otp            *string
	OtpGeneratedAt *time.Time

	CreatedAt time.Time

	Tokens []Token `gorm:"foreignKey:UserID"`
}
