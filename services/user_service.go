package services

import (
	"github.com/matheen-ahmed/fitness-tracker/config"
	"github.com/matheen-ahmed/fitness-tracker/models"
)

type ProfileInput struct {
	Username           string  `json:"username"`
	Age                int     `json:"age"`
	Weight             float64 `json:"weight"`
	Goal               string  `json:"goal"`
	DailyCalorieIntake int     `json:"dailyCalorieIntake"`
}

// UpdateUserProfile applies the onboarding fields that were provided and
// leaves the rest untouched.
func UpdateUserProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Goal != "" {
		user.Goal = input.Goal
	}
	if input.DailyCalorieIntake > 0 {
		user.DailyCalorieIntake = input.DailyCalorieIntake
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
