package models

import "time"

// Progress is one row per (UserID, Skill); writes go through the store's
// upsert so the pair stays unique.
type Progress struct {
	ID        uint   `gorm:"primaryKey"`
	Skill     string `gorm:"size:140;not null;uniqueIndex:idx_progress_owner_skill"`
	Level     int    `gorm:"not null"`
	Notes     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    uint `gorm:"not null;uniqueIndex:idx_progress_owner_skill"`
}
