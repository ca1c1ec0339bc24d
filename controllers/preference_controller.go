package controllers

import (
	"fmt"
	"net/http"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	History *services.HistoryService
	Trends  *services.TrendService
}

func NewPreferenceController(history *services.HistoryService, trends *services.TrendService) *PreferenceController {
	return &PreferenceController{History: history, Trends: trends}
}

func (pc *PreferenceController) GetPreferences(c *gin.Context) {
	pref, err := pc.History.GetPreferences(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

func (pc *PreferenceController) UpdatePreferences(c *gin.Context) {
	var in models.Preference
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	pref, err := pc.History.UpdatePreferences(c.Request.Context(), &in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pref)
}

type emailReportRequest struct {
	To string `json:"to"`
}

// EmailWeeklyReport sends the weekly stats digest to the preferences email
// (or an explicit override).
func (pc *PreferenceController) EmailWeeklyReport(c *gin.Context) {
	var req emailReportRequest
	_ = c.ShouldBindJSON(&req)

	to := req.To
	if to == "" {
		pref, err := pc.History.GetPreferences(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		to = pref.ReportEmail
	}
	if to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no report email configured"})
		return
	}

	stats, err := pc.Trends.WeeklyStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	body := fmt.Sprintf(
		"Your week at the mess:\n\nMeals logged: %d\nAvg calories: %.0f kcal\nAvg protein: %.0f g\nAvg carbs: %.0f g\nAvg fat: %.0f g\n",
		stats.TotalMeals, stats.AvgCalories, stats.AvgProtein, stats.AvgCarbs, stats.AvgFat,
	)
	if stats.BestDay != "" {
		body += fmt.Sprintf("Best day: %s\n", stats.BestDay)
	}

	if err := utils.SendWeeklyReport(c.Request.Context(), to, body); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": true})
}
