package model

import "time"

type FoundItem struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Description string `gorm:"size:1000"`
	Location    string
	FoundDate   time.Time
	Returned    bool `gorm:"default:false"`
	ImagePath   string
	UserID      string `gorm:"index"`
	CreatedAt   time.Time

	ReportedBy User `gorm:"foreignKey:UserID"`
}
