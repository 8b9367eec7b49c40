package routes

import (
	"net/http"

	"github.com/YDahdah/NutriLens/controllers"
	"github.com/YDahdah/NutriLens/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:5173", "http://127.0.0.1:5173",
			"http://localhost:8080", "http://127.0.0.1:8080",
			"http://localhost:3000", "http://127.0.0.1:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	r.GET("/health", controllers.Health)
	r.GET("/health/mongo", controllers.HealthMongo)

	// Public auth routes; profile is the one that needs a token
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.GET("/verify-email", controllers.VerifyEmail)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/verify-code", controllers.VerifyResetCode)
		auth.POST("/reset-password", controllers.ResetPassword)
		auth.POST("/resend-verification", controllers.ResendVerification)
		auth.GET("/resend-verification", controllers.ResendVerification)
		auth.GET("/profile", middlewares.AuthMiddleware(), controllers.Profile)
	}

	foods := r.Group("/api/foods")
	{
		foods.GET("/search", controllers.SearchFoods)
		foods.GET("/categories", controllers.FoodCategories)
		foods.GET("/category/:category", controllers.FoodsByCategory)
		foods.GET("/random", controllers.RandomFoods)
		foods.POST("/add", controllers.AddFood)
		foods.GET("/:food_id", controllers.FoodByID)
	}

	foodLogs := r.Group("/api/food-logs")
	foodLogs.Use(middlewares.AuthMiddleware())
	{
		foodLogs.POST("/log", controllers.LogFood)
		foodLogs.GET("/logs", controllers.FoodLogsForDate)
		foodLogs.PUT("/logs/:log_id", controllers.UpdateFoodLog)
		foodLogs.DELETE("/logs/:log_id", controllers.DeleteFoodLog)
		foodLogs.GET("/summary", controllers.FoodLogSummary)
	}

	userData := r.Group("/api/user-data")
	userData.GET("/activity/exercise/suggestions", controllers.ExerciseSuggestions)
	userData.Use(middlewares.AuthMiddleware())
	{
		userData.GET("/profile", controllers.GetUserProfile)
		userData.PUT("/profile", controllers.SaveUserProfile)
		userData.GET("/profile/photo", controllers.GetProfilePhoto)
		userData.POST("/profile/photo", controllers.UploadProfilePhoto)
		userData.DELETE("/profile/photo", controllers.DeleteProfilePhoto)
		userData.POST("/profile/photo/remove", controllers.DeleteProfilePhoto)

		userData.GET("/goals/today", controllers.GetUserGoals)
		userData.PUT("/goals/today", controllers.SaveUserGoals)

		userData.GET("/meals/today", controllers.GetTodayMeals)
		userData.POST("/meals/today", controllers.SaveTodayMeals)
		userData.GET("/meals/by-date", controllers.GetMealsByDate)
		userData.POST("/meals/add", controllers.AddMeal)
		userData.GET("/meals/history", controllers.MealHistory)
		userData.DELETE("/meals/delete", controllers.DeleteMealDay)

		userData.GET("/reports/weekly", controllers.WeeklyReport)
		userData.GET("/reports/monthly", controllers.MonthlyReport)
		userData.GET("/reports/yearly", controllers.YearlyReport)

		userData.GET("/activity/today", controllers.GetTodayActivity)
		userData.PUT("/activity/today", controllers.SaveTodayActivity)
		userData.POST("/activity/exercise", controllers.AddExercise)
		userData.PUT("/activity/water", controllers.UpdateWaterIntake)
		userData.DELETE("/activity/exercise/:index", controllers.DeleteExercise)
		userData.GET("/activity/history", controllers.ActivityHistory)
		userData.POST("/activity/exercise/estimate-calories", controllers.EstimateExerciseCalories)
	}

	chat := r.Group("/api/chat")
	{
		chat.POST("/message", controllers.ChatMessage)
	}

	vision := r.Group("/api/vision")
	{
		vision.POST("/analyze", controllers.AnalyzeMealPhoto)
	}

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/users", controllers.ListUsers)
		admin.GET("/users/:user_id", controllers.AdminUserDetail)
		admin.PUT("/users/:user_id/admin", controllers.SetUserAdmin)
		admin.DELETE("/users/:user_id", controllers.DeleteUser)
		admin.DELETE("/users/:user_id/history", controllers.DeleteUserHistory)
		admin.GET("/stats", controllers.AdminStats)
		admin.POST("/users/bulk", controllers.BulkUserOperation)
		admin.GET("/logs", controllers.AdminLogs)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Not found"})
	})

	return r
}
