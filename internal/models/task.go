package models

import "time"

type Task struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:140;not null"`
	Description string `gorm:"type:text"`
	Completed   bool   `gorm:"not null;default:false"`
	DueDate     *time.Time
	CreatedAt   time.Time
	UserID      uint  `gorm:"not null;index"`
	RoadmapID   *uint `gorm:"index"`
}
