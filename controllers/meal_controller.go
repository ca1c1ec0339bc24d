package controllers

import (
	"net/http"
	"strconv"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	History *services.HistoryService
	Hub     *services.ChatHub
}

func NewMealController(history *services.HistoryService, hub *services.ChatHub) *MealController {
	return &MealController{History: history, Hub: hub}
}

type saveMealRequest struct {
	Items     []models.FoodNutrition `json:"items"`
	Nutrition models.MealTotals      `json:"nutrition"`
	Insights  string                 `json:"insights"`
}

func (mc *MealController) SaveMeal(c *gin.Context) {
	var req saveMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No meal to save. Please analyze a menu first."})
		return
	}

	meal, err := mc.History.SaveMeal(c.Request.Context(), req.Items, req.Nutrition, req.Insights)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.Broadcast(gin.H{"type": "meal_saved", "meal": meal})
	c.JSON(http.StatusCreated, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	meals, err := mc.History.AllMeals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) RecentMeals(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a positive integer"})
		return
	}
	meals, err := mc.History.RecentMeals(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) ClearAll(c *gin.Context) {
	if err := mc.History.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}
