package controllers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

const maxVisionImageBytes = 20 * 1024 * 1024

// placeholderVisionResult stands in for the model when no API key is
// configured, so the frontend flow stays testable without one.
func placeholderVisionResult() *services.VisionResult {
	return &services.VisionResult{
		Items: []services.VisionItem{
			{Name: "lettuce", Confidence: 0.9, Calories: 10},
			{Name: "tomatoes", Confidence: 0.9, Calories: 25},
			{Name: "cucumbers", Confidence: 0.8, Calories: 15},
			{Name: "olive oil dressing", Confidence: 0.7, Calories: 80},
		},
		Recipe: map[string]any{
			"title":             "Simple Mixed Salad",
			"ingredients":       []string{"lettuce", "tomato", "cucumber", "olive oil", "lemon"},
			"instructions":      []string{"Chop veggies", "Dress with oil and lemon", "Season and serve"},
			"estimatedCalories": 130,
		},
		Summary: "Vision service API key not set. Returning a placeholder estimate with individual food items.",
	}
}

func AnalyzeMealPhoto(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file provided"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Empty filename"})
		return
	}

	svc := chatService()
	if !svc.Configured() {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": placeholderVisionResult()})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload failed: " + err.Error()})
		return
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload failed: " + err.Error()})
		return
	}

	if len(data) > maxVisionImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": fmt.Sprintf("Image too large (%.1fMB). Maximum size is 20MB. Please compress or resize your image.", float64(len(data))/1024/1024),
		})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)

	result, err := svc.AnalyzeMealPhoto(dataURL)
	if err != nil {
		var notFood *services.NotFoodError
		var ue *services.UpstreamError
		switch {
		case errors.As(err, &notFood):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": notFood.Reason})
		case errors.As(err, &ue):
			c.JSON(ue.Status, gin.H{"success": false, "message": ue.Message})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": "Vision analysis failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
