package model

import "time"

type LostItem struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Description string `gorm:"size:1000"`
	Location    string
	LostDate    time.Time
	Resolved    bool `gorm:"default:false"`
	ImagePath   string
	UserID      string `gorm:"index"`
	CreatedAt   time.Time

	ReportedBy User `gorm:"foreignKey:UserID"`
}
