package models

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	CareerGoal   string `gorm:"size:140"`
	AboutMe      string `gorm:"size:140"`
	CreatedAt    time.Time
}
