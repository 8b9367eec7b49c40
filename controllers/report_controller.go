package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func WeeklyReport(c *gin.Context) {
	report, err := reportService().Weekly(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Report failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

func MonthlyReport(c *gin.Context) {
	report, err := reportService().Monthly(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Report failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}

func YearlyReport(c *gin.Context) {
	report, err := reportService().Yearly(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Report failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": report})
}
