package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

// dateQuery parses the optional ?date=YYYY-MM-DD parameter, defaulting to today.
func dateQuery(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse("2006-01-02", raw)
}

func LogFood(c *gin.Context) {
	userID := mongoUID(c)

	var input services.LogFoodRequest
	if err := c.ShouldBindJSON(&input); err != nil || input.FoodID == "" || input.Quantity <= 0 || input.MealType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Food ID, quantity, and meal type are required"})
		return
	}

	result, err := foodLogService().LogFood(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFoodID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid food id"})
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": fmt.Sprintf("Food not found with ID: %s", input.FoodID)})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Logging failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Food logged successfully", "data": result})
}

func FoodLogsForDate(c *gin.Context) {
	userID := mongoUID(c)

	day, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	logs, err := foodLogService().LogsForDate(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": logs})
}

func UpdateFoodLog(c *gin.Context) {
	userID := mongoUID(c)

	var input services.UpdateLogRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := foodLogService().UpdateLog(c.Request.Context(), userID, c.Param("log_id"), input); err != nil {
		status, message := updateLogError(err)
		c.JSON(status, gin.H{"success": false, "message": message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food log updated successfully"})
}

// updateLogError maps UpdateLog failures onto the response taxonomy. The
// re-derive path can fail on the quantity or on the referenced food, not
// just on the log itself.
func updateLogError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrInvalidLogID):
		return http.StatusBadRequest, "Invalid log ID"
	case errors.Is(err, services.ErrLogNotFound):
		return http.StatusNotFound, "Food log not found"
	case errors.Is(err, services.ErrInvalidQuantity):
		return http.StatusBadRequest, "Quantity must be a positive number"
	case errors.Is(err, services.ErrInvalidFoodID):
		return http.StatusBadRequest, "Invalid food id"
	case errors.Is(err, services.ErrFoodNotFound):
		return http.StatusNotFound, "Food not found"
	default:
		return http.StatusInternalServerError, "Update failed: " + err.Error()
	}
}

func DeleteFoodLog(c *gin.Context) {
	userID := mongoUID(c)

	err := foodLogService().DeleteLog(c.Request.Context(), userID, c.Param("log_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidLogID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid log ID"})
		case errors.Is(err, services.ErrLogNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food log not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Delete failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food log deleted successfully"})
}

func FoodLogSummary(c *gin.Context) {
	userID := mongoUID(c)

	day, err := dateQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	summary, err := foodLogService().Summary(c.Request.Context(), userID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Summary failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
