package controllers

import (
	"strconv"
	"sync"

	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/services"

	"github.com/gin-gonic/gin"
)

// Shared service handles. Built lazily so the Mongo connection and config
// are established before any collection handle is captured.
var (
	foodService     = sync.OnceValue(services.NewFoodService)
	foodLogService  = sync.OnceValue(func() *services.FoodLogService { return services.NewFoodLogService(foodService()) })
	mealService     = sync.OnceValue(services.NewMealService)
	activityService = sync.OnceValue(services.NewActivityService)
	profileService  = sync.OnceValue(services.NewProfileService)
	goalService     = sync.OnceValue(services.NewGoalService)
	reportService   = sync.OnceValue(services.NewReportService)
	adminService    = sync.OnceValue(services.NewAdminService)
	chatService     = sync.OnceValue(services.NewOpenRouterService)
	chatLimiter     = sync.OnceValue(func() *services.RateLimiter {
		return services.NewRateLimiter(config.App.ChatMinInterval)
	})
)

// mongoUID returns the authenticated user's ID in the decimal-string form
// used as the userId key in the Mongo collections.
func mongoUID(c *gin.Context) string {
	return strconv.FormatUint(uint64(c.GetUint("userID")), 10)
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
