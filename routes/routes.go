package routes

import (
	"backend/controllers"
	"backend/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	menuCtl *controllers.MenuController,
	mealCtl *controllers.MealController,
	trendCtl *controllers.TrendController,
	dataCtl *controllers.DataController,
	prefCtl *controllers.PreferenceController,
	chatCtl *controllers.ChatController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	menu := r.Group("/menu")
	{
		menu.POST("/analyze", menuCtl.AnalyzeMenu)
		menu.POST("/image", menuCtl.ExtractMenuImage)
		menu.POST("/classify", menuCtl.ClassifyMenu)
	}

	meals := r.Group("/meals")
	{
		meals.POST("", mealCtl.SaveMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/recent", mealCtl.RecentMeals)
		meals.DELETE("", mealCtl.ClearAll)
	}

	trends := r.Group("/trends")
	{
		trends.GET("/weekly", trendCtl.GetWeeklyStats)
		trends.GET("/daily", trendCtl.GetTrendData)
	}

	data := r.Group("/data")
	{
		data.GET("/export", dataCtl.Export)
		data.POST("/import", dataCtl.Import)
		data.POST("/rebuild-summaries", dataCtl.RebuildSummaries)
	}

	prefs := r.Group("/preferences")
	{
		prefs.GET("", prefCtl.GetPreferences)
		prefs.PUT("", prefCtl.UpdatePreferences)
	}

	r.POST("/chat", chatCtl.Chat)
	r.GET("/ws/chat", chatCtl.ChatWS)
	r.POST("/report/email", prefCtl.EmailWeeklyReport)

	return r
}
