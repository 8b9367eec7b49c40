package controllers

import (
	"net/http"
	"time"

	"github.com/YDahdah/NutriLens/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "NutriLens API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}

func HealthMongo(c *gin.Context) {
	if err := config.PingMongo(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "mongo": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "mongo": "ok", "database": config.MongoDB.Name()})
}
