package models

import (
	"time"

	"gorm.io/gorm"
)

type ActivityLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   uint   `gorm:"index;not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Duration int    `json:"duration"` // minutes
	Calories int    `json:"calories"` // burned; may be zero
}
