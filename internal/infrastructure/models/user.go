package models

import (
	"time"
)

// User.TeamID is a plain column: teams can be deleted out from under users.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(254);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	TeamID    *uint  `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
