package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/services"
	"github.com/YDahdah/NutriLens/utils"

	"github.com/gin-gonic/gin"
)

func GetTodayActivity(c *gin.Context) {
	activity, err := activityService().TodayActivity(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"date": services.Today(), "activity": activity}})
}

func SaveTodayActivity(c *gin.Context) {
	var activity models.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := activityService().SaveTodayActivity(c.Request.Context(), mongoUID(c), activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activity saved", "data": gin.H{"date": services.Today()}})
}

func AddExercise(c *gin.Context) {
	var exercise models.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	saved, err := activityService().AddExercise(c.Request.Context(), mongoUID(c), exercise)
	if err != nil {
		if errors.Is(err, services.ErrExerciseNameRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Exercise name is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Exercise added", "data": gin.H{"exercise": saved}})
}

type waterIntakeInput struct {
	WaterIntake float64 `json:"waterIntake"`
}

func UpdateWaterIntake(c *gin.Context) {
	var input waterIntakeInput
	if err := c.ShouldBindJSON(&input); err != nil || input.WaterIntake < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "waterIntake must be a non-negative number"})
		return
	}

	if err := activityService().UpdateWaterIntake(c.Request.Context(), mongoUID(c), input.WaterIntake); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Water intake updated", "data": gin.H{"waterIntake": input.WaterIntake}})
}

func DeleteExercise(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid exercise index"})
		return
	}

	err = activityService().DeleteExercise(c.Request.Context(), mongoUID(c), index)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoActivityToday):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No activity found for today"})
		case errors.Is(err, services.ErrInvalidExerciseIndex):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid exercise index"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Delete failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Exercise deleted"})
}

func ActivityHistory(c *gin.Context) {
	history, err := activityService().History(c.Request.Context(), mongoUID(c), intQuery(c, "limit", 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"history": history, "totalDays": len(history)}})
}

func ExerciseSuggestions(c *gin.Context) {
	suggestions := services.ExerciseSuggestions(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"suggestions": suggestions}})
}

type estimateCaloriesInput struct {
	ExerciseName string  `json:"exerciseName"`
	Duration     float64 `json:"duration"`
}

func EstimateExerciseCalories(c *gin.Context) {
	var input estimateCaloriesInput
	if err := c.ShouldBindJSON(&input); err != nil || input.ExerciseName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Exercise name is required"})
		return
	}
	if input.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Duration must be greater than 0"})
		return
	}

	data := gin.H{"exerciseName": input.ExerciseName, "duration": input.Duration}
	if chatService().Configured() {
		if calories, err := chatService().EstimateCalories(input.ExerciseName, input.Duration); err == nil {
			data["estimatedCalories"] = calories
			c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
			return
		}
	}
	data["estimatedCalories"] = utils.EstimateCaloriesBurned(input.ExerciseName, input.Duration)
	data["note"] = "Used fallback estimation"
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
