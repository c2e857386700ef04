package models

import "time"

// Roadmap generation outcomes. A failed generation is recorded as such and
// never masquerades as roadmap content.
const (
	RoadmapStatusOK     = "ok"
	RoadmapStatusFailed = "failed"
)

type Roadmap struct {
	ID            uint   `gorm:"primaryKey"`
	Title         string `gorm:"size:140"`
	Content       string `gorm:"type:text"`
	Status        string `gorm:"not null;default:'ok'"`
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	UserID        uint `gorm:"not null;index"`
}

func (r *Roadmap) Failed() bool {
	return r.Status == RoadmapStatusFailed
}
