package models

import (
	"time"

	"gorm.io/datatypes"
)

type Workout struct {
	ID            uint           `gorm:"primaryKey"`
	Name          string         `gorm:"type:varchar(200);not null"`
	Description   string         `gorm:"type:text;not null"`
	Difficulty    string         `gorm:"type:varchar(50);not null"`
	Duration      int            `gorm:"not null"`
	WorkoutType   string         `gorm:"type:varchar(100);not null"`
	TargetMuscles datatypes.JSON `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
