package models

import (
	"time"
)

type Activity struct {
	ID           uint     `gorm:"primaryKey"`
	UserID       uint     `gorm:"not null;index"`
	ActivityType string   `gorm:"type:varchar(100);not null"`
	Duration     int      `gorm:"not null"`
	Distance     *float64 `gorm:"type:double precision"`
	Calories     *int
	Date         time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
