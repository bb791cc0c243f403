// controllers/activity_log_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/matheen-ahmed/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

type ActivityLogInput struct {
	Data struct {
		Name     string `json:"name" binding:"required"`
		Duration int    `json:"duration" binding:"required,gt=0"`
		Calories int    `json:"calories" binding:"gte=0"`
	} `json:"data" binding:"required"`
}

func ListActivityLogs(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	logs, err := services.ListActivityLogs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func CreateActivityLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ActivityLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.CreateActivityLog(userID, input.Data.Name, input.Data.Duration, input.Data.Calories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func DeleteActivityLog(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := services.DeleteActivityLog(userID, uint(id)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
