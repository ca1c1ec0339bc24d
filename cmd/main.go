package main

import (
	"backend/config"
	"backend/controllers"
	"backend/logger"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	logger.Init()
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	usda := services.NewUSDAService()
	nutrition := services.NewNutritionService(usda)
	gemini := services.NewGeminiService()
	history := services.NewHistoryService(config.DB)
	trends := services.NewTrendService(config.DB, config.DefaultGoals.Calories)
	insights := services.NewInsightService(gemini)
	hub := services.NewChatHub()

	vision, err := services.NewVisionService()
	if err != nil {
		logger.Warn("image recognition disabled", "err", err)
		vision = nil
	}

	r := routes.SetupRouter(
		controllers.NewMenuController(nutrition, gemini, vision, insights),
		controllers.NewMealController(history, hub),
		controllers.NewTrendController(trends),
		controllers.NewDataController(history),
		controllers.NewPreferenceController(history, trends),
		controllers.NewChatController(gemini, history, hub),
	)

	logger.Info("listening", "addr", ":8080")
	if err := r.Run(":8080"); err != nil {
		logger.Error("server exited", "err", err)
	}
}
