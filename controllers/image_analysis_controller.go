package controllers

import (
	"encoding/base64"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/matheen-ahmed/fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

// AnalyzeImage accepts one uploaded image, forwards it to the vision model
// and relays the extracted {name, calories} record. Single pass, no retries.
func AnalyzeImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	base64Image := base64.StdEncoding.EncodeToString(raw)

	guess, err := services.NewVisionService().AnalyzeFoodImage(mimeType, base64Image)
	if err != nil {
		var extErr *services.ExtractionError
		if errors.As(err, &extErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI failed to return structured data"})
			return
		}
		log.Printf("IMAGE ANALYSIS ERROR: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": guess})
}
