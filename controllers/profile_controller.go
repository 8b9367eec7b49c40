package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

func GetUserProfile(c *gin.Context) {
	profile, err := profileService().Profile(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	if profile == nil {
		profile = map[string]any{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"profile": profile}})
}

func SaveUserProfile(c *gin.Context) {
	var profile map[string]any
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := profileService().SaveProfile(c.Request.Context(), mongoUID(c), profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully"})
}

func GetProfilePhoto(c *gin.Context) {
	url, err := profileService().PhotoURL(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"photoUrl": url}})
}

func UploadProfilePhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No photo file provided"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file selected"})
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

	url, err := profileService().UploadPhoto(c.Request.Context(), mongoUID(c), file.Filename, file.Header.Get("Content-Type"), data)
	if err != nil {
		var invalid *services.InvalidPhotoTypeError
		switch {
		case errors.As(err, &invalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": invalid.Error()})
		case errors.Is(err, services.ErrPhotoTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "File too large. Maximum size is 5MB"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Upload failed: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile photo updated", "data": gin.H{"photoUrl": url}})
}

func DeleteProfilePhoto(c *gin.Context) {
	if err := profileService().DeletePhoto(c.Request.Context(), mongoUID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Delete failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile photo removed"})
}

func GetUserGoals(c *gin.Context) {
	goals, err := goalService().Goals(c.Request.Context(), mongoUID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Lookup failed: " + err.Error()})
		return
	}
	if goals == nil {
		goals = map[string]any{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"goals": goals}})
}

func SaveUserGoals(c *gin.Context) {
	var goals map[string]any
	if err := c.ShouldBindJSON(&goals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if err := goalService().SaveGoals(c.Request.Context(), mongoUID(c), goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Save failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Goals updated successfully"})
}
