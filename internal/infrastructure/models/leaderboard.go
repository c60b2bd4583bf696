package models

import (
	"time"
)

type LeaderboardEntry struct {
	ID              uint    `gorm:"primaryKey"`
	UserID          uint    `gorm:"uniqueIndex;not null"`
	UserName        string  `gorm:"type:varchar(100);not null"`
	TeamID          *uint   `gorm:"index"`
	TeamName        *string `gorm:"type:varchar(100)"`
	TotalPoints     int     `gorm:"not null;default:0"`
	TotalActivities int     `gorm:"not null;default:0"`
	TotalDuration   int     `gorm:"not null;default:0"`
	Rank            *int    `gorm:"index"`
	UpdatedAt       time.Time
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}
