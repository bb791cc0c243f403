package services

import (
	"github.com/matheen-ahmed/fitness-tracker/config"
	"github.com/matheen-ahmed/fitness-tracker/models"
)

func ListActivityLogs(userID uint) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&logs).Error
	return logs, err
}

func CreateActivityLog(userID uint, name string, duration, calories int) (*models.ActivityLog, error) {
	entry := models.ActivityLog{
		UserID:   userID,
		Name:     name,
		Duration: duration,
		Calories: calories,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func DeleteActivityLog(userID, id uint) error {
	result := config.DB.
		Where("user_id = ?", userID).
		Delete(&models.ActivityLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLogNotFound
	}
	return nil
}
