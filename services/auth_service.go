package services

import (
	"errors"

	"github.com/matheen-ahmed/fitness-tracker/config"
	"github.com/matheen-ahmed/fitness-tracker/models"
	"github.com/matheen-ahmed/fitness-tracker/utils"
)

func RegisterUser(username, email, password string) (*models.User, error) {
	var existing models.User
	if err := config.DB.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
		return nil, errors.New("email or username is already taken")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser accepts either the email or the username as identifier.
func AuthenticateUser(identifier, password string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ? OR username = ?", identifier, identifier).First(&user)
	if result.Error != nil {
		return nil, errors.New("invalid identifier or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("invalid identifier or password")
	}

	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
