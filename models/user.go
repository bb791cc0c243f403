package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Onboarding fields; the profile counts as complete once age,
	// weight and goal are all set.
	Age                int     `json:"age,omitempty"`
	Weight             float64 `json:"weight,omitempty"`
	Goal               string  `json:"goal,omitempty"`
	DailyCalorieIntake int     `json:"dailyCalorieIntake,omitempty"`
}
