package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/matheen-ahmed/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type FoodLogInput struct {
	Data struct {
		Name     string `json:"name" binding:"required"`
		Calories int    `json:"calories" binding:"required,gt=0"`
		MealType string `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	} `json:"data" binding:"required"`
}

func ListFoodLogs(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	logs, err := services.ListFoodLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func CreateFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input FoodLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.CreateFoodLog(userID, input.Data.Name, input.Data.Calories, input.Data.MealType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteFoodLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteFoodLog(userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
