package models

import (
	"time"

	"gorm.io/gorm"
)

type FoodLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   uint   `gorm:"index;not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Calories int    `gorm:"not null" json:"calories"`
	MealType string `gorm:"not null" json:"mealType"` // breakfast | lunch | dinner | snack
}
