package controllers

import (
	"net/http"
	"strings"

	"backend/logger"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Nutrition *services.NutritionService
	Gemini    *services.GeminiService
	Vision    *services.VisionService
	Insights  *services.InsightService
}

func NewMenuController(
	nutrition *services.NutritionService,
	gemini *services.GeminiService,
	vision *services.VisionService,
	insights *services.InsightService,
) *MenuController {
	return &MenuController{Nutrition: nutrition, Gemini: gemini, Vision: vision, Insights: insights}
}

type analyzeRequest struct {
	Text  string   `json:"text"`
	Items []string `json:"items"`
}

// AnalyzeMenu runs the full pipeline for typed or pre-extracted menu
// items: resolve each item, aggregate, generate insights and tips. Nothing
// is persisted until the meal is explicitly saved.
func (mc *MenuController) AnalyzeMenu(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	items := req.Items
	if len(items) == 0 {
		if strings.TrimSpace(req.Text) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter menu items"})
			return
		}
		var err error
		items, err = mc.Gemini.CleanMenuText(req.Text)
		if err != nil {
			logger.Warn("menu cleanup failed, splitting locally", "err", err)
			items = services.SplitMenuText(req.Text)
		}
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No menu items to analyze"})
		return
	}

	nutrition := mc.Nutrition.ResolveMany(items)
	totals := services.AggregateTotals(nutrition)
	insights := mc.Insights.GenerateInsights(totals)

	c.JSON(http.StatusOK, gin.H{
		"items":        nutrition,
		"nutrition":    totals,
		"insights":     insights,
		"alternatives": mc.Gemini.SuggestAlternatives(items),
		"tips": gin.H{
			"hydration": services.HydrationReminder(),
			"portion":   services.PortionAdvice(totals.Calories),
		},
	})
}

type menuImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// ExtractMenuImage pulls the item list out of a menu photo: archive the
// photo, detect the printed lines, let the model clean them up.
func (mc *MenuController) ExtractMenuImage(c *gin.Context) {
	var req menuImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if mc.Vision == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image recognition not configured"})
		return
	}

	photoURL, err := utils.UploadMenuPhoto(c.Request.Context(), req.ImageBase64)
	if err != nil {
		// archival is best-effort; extraction still proceeds
		logger.Warn("menu photo upload failed", "err", err)
	}

	lines, err := mc.Vision.DetectMenuText(c.Request.Context(), req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(lines) == 0 {
		c.JSON(http.StatusOK, gin.H{"items": []string{}, "photo_url": photoURL})
		return
	}

	items, err := mc.Gemini.CleanMenuText(strings.Join(lines, "\n"))
	if err != nil {
		logger.Warn("menu cleanup failed, using raw lines", "err", err)
		items = services.SplitMenuText(strings.Join(lines, "\n"))
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "photo_url": photoURL})
}

type classifyRequest struct {
	Items []string `json:"items" binding:"required"`
}

func (mc *MenuController) ClassifyMenu(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	c.JSON(http.StatusOK, mc.Gemini.ClassifyFoodItems(req.Items))
}
