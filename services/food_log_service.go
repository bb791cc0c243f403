package services

import (
	"errors"

	"github.com/matheen-ahmed/fitness-tracker/config"
	"github.com/matheen-ahmed/fitness-tracker/models"
)

var ErrLogNotFound = errors.New("log entry not found")

func ListFoodLogs(userID uint) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&logs).Error
	return logs, err
}

func CreateFoodLog(userID uint, name string, calories int, mealType string) (*models.FoodLog, error) {
	entry := models.FoodLog{
		UserID:   userID,
		Name:     name,
		Calories: calories,
		MealType: mealType,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func DeleteFoodLog(userID, id uint) error {
	result := config.DB.
		Where("user_id = ?", userID).
		Delete(&models.FoodLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
