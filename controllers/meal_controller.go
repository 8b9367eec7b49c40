package controllers

import (
	"errors"
	"net/http"

	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

func GetTodayMeals(c *gin.Context) {
	date := services.Today()
	meals, err := mealService().MealsForDate(c.Request.Context(), mongoUID(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"date": date, "meals": meals}})
}

type saveMealsInput struct {
	Meals []models.Meal `json:"meals"`
}

func SaveTodayMeals(c *gin.Context) {
	var input saveMealsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := mealService().SaveMeals(c.Request.Context(), mongoUID(c), input.Meals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meals saved", "data": gin.H{"date": services.Today()}})
}

func GetMealsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "date query param (YYYY-MM-DD) is required"})
		return
	}

	meals, err := mealService().MealsForDate(c.Request.Context(), mongoUID(c), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"date": date, "meals": meals}})
}

type addMealInput struct {
	Meal *models.Meal `json:"meal"`
}

func AddMeal(c *gin.Context) {
	var input addMealInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Meal == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "meal object is required"})
		return
	}

	date := services.Today()
	if err := mealService().AddMeal(c.Request.Context(), mongoUID(c), date, *input.Meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal added", "data": gin.H{"date": date}})
}

func MealHistory(c *gin.Context) {
	history, err := mealService().History(c.Request.Context(), mongoUID(c), intQuery(c, "limit", 30))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"history": history, "totalDays": len(history)}})
}

func DeleteMealDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = services.Today()
	}

	err := mealService().DeleteDay(c.Request.Context(), mongoUID(c), date)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotToday):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "You can only delete meals for today."})
		case errors.Is(err, services.ErrNoMealsForDate):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No meals found for this date"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Delete failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Day deleted successfully"})
}
