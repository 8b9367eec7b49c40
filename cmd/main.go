package main

import (
	"github.com/YDahdah/NutriLens/config"
	"github.com/YDahdah/NutriLens/routes"
	"github.com/YDahdah/NutriLens/services"
	"github.com/YDahdah/NutriLens/utils"
)

func main() {
	config.Load()
	config.InitDB()
	config.InitMongo()
	utils.InitS3()

	services.NewAuthService().StartReminderScheduler()

	r := routes.SetupRouter()
	r.Run(":" + config.App.Port)
}
