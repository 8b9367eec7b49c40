package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

func pathUserID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

func ListUsers(c *gin.Context) {
	page, err := adminService().ListUsers(intQuery(c, "page", 1), intQuery(c, "limit", 50), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching users: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
}

func AdminUserDetail(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	detail, err := adminService().UserDetail(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching user: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": detail}})
}

type setAdminInput struct {
	IsAdmin bool `json:"is_admin"`
}

func SetUserAdmin(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	var input setAdminInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	err := adminService().SetAdmin(c.Request.Context(), c.GetUint("userID"), userID, input.IsAdmin, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDemoteSelf):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot demote yourself"})
		case errors.Is(err, services.ErrCannotDemoteMain):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot demote the main admin"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating admin status: " + err.Error()})
		}
		return
	}

	verb := "demoted from"
	if input.IsAdmin {
		verb = "promoted to"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("User %s admin successfully", verb)})
}

func DeleteUser(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	err := adminService().DeleteUser(c.Request.Context(), c.GetUint("userID"), userID, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCannotDeleteSelf):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot delete yourself"})
		case errors.Is(err, services.ErrCannotDeleteMain):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot delete the main admin"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting user: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User and all associated data deleted successfully"})
}

func DeleteUserHistory(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	result, err := adminService().DeleteUserHistory(c.Request.Context(), c.GetUint("userID"), userID, c.Query("category"), c.Query("date"), c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, services.ErrInvalidDateFilter):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format. Use YYYY-MM-DD"})
		case errors.Is(err, services.ErrInvalidHistoryScope):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category. Use meals, food_logs, activity, goals or all"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting user history: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("User history deleted successfully. %d record(s) removed.", result.TotalDeleted),
		"data":    result,
	})
}

func AdminStats(c *gin.Context) {
	stats, err := adminService().Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching stats: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

type bulkInput struct {
	UserIDs []uint `json:"user_ids"`
	Action  string `json:"action"`
}

func BulkUserOperation(c *gin.Context) {
	var input bulkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user_ids array is required"})
		return
	}

	result, err := adminService().BulkUserOperation(c.Request.Context(), c.GetUint("userID"), input.UserIDs, input.Action, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBulkUserIDs):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "user_ids array is required"})
		case errors.Is(err, services.ErrInvalidBulkAction):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Valid action is required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error performing bulk operation: " + err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Bulk operation completed: %d succeeded, %d failed", result.Success, result.Failed),
		"data":    result,
	})
}

func AdminLogs(c *gin.Context) {
	logs, err := adminService().Logs(c.Request.Context(), intQuery(c, "page", 1), intQuery(c, "limit", 50), c.Query("action"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching logs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": logs})
}
