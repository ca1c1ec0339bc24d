package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TrendController struct {
	Svc *services.TrendService
}

func NewTrendController(svc *services.TrendService) *TrendController {
	return &TrendController{Svc: svc}
}

func (tc *TrendController) GetWeeklyStats(c *gin.Context) {
	stats, err := tc.Svc.WeeklyStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (tc *TrendController) GetTrendData(c *gin.Context) {
	points, err := tc.Svc.TrendData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": points})
}
