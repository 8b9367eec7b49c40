package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/YDahdah/NutriLens/models"
	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

func SearchFoods(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Search query is required"})
		return
	}

	foods, err := foodService().Search(c.Request.Context(), query, intQuery(c, "limit", 10))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Search failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"foods": foods, "count": len(foods)}})
}

func FoodsByCategory(c *gin.Context) {
	category := c.Param("category")
	foods, err := foodService().ByCategory(c.Request.Context(), category, intQuery(c, "limit", 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"foods": foods, "count": len(foods)}})
}

func FoodCategories(c *gin.Context) {
	categories, err := foodService().Categories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"categories": categories}})
}

func RandomFoods(c *gin.Context) {
	foods, err := foodService().Random(c.Request.Context(), intQuery(c, "limit", 5))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"foods": foods, "count": len(foods)}})
}

func AddFood(c *gin.Context) {
	var food models.Food
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	var missing []string
	if food.Name == "" {
		missing = append(missing, "name")
	}
	if food.Calories <= 0 {
		missing = append(missing, "calories")
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	id, err := foodService().Add(c.Request.Context(), &food)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Insert failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Food added successfully",
		"data":    gin.H{"foodId": id},
	})
}

func FoodByID(c *gin.Context) {
	food, err := foodService().ByID(c.Request.Context(), c.Param("food_id"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidFoodID):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid food id"})
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"food": food}})
}
