package services

import (
	"math/rand"

	"backend/config"
	"backend/logger"
	"backend/models"
)

// InsightService turns a meal's totals into insight records: deterministic
// threshold rules plus an optional AI narrative.
type InsightService struct {
	gemini *GeminiService
}

func NewInsightService(gemini *GeminiService) *InsightService {
	return &InsightService{gemini: gemini}
}

// GenerateInsights applies the alert rules (strict comparisons; a value at
// the threshold does not fire) and appends one ai-typed insight from the
// generative service. A failed AI call just drops that entry.
func (s *InsightService) GenerateInsights(totals models.MealTotals) []models.Insight {
	insights := []models.Insight{}

	if totals.Carbs > config.Alerts.HighCarbs {
		insights = append(insights, models.Insight{
			Type:    models.InsightWarning,
			Title:   "High Carbs Alert",
			Message: "Your meal is high in carbohydrates today. Consider adding more protein-rich foods.",
		})
	}
	if totals.Protein < config.Alerts.LowProtein {
		insights = append(insights, models.Insight{
			Type:    models.InsightWarning,
			Title:   "Low Protein",
			Message: "You might not be getting enough protein. Try adding dal, paneer, or eggs to your diet.",
		})
	}
	if totals.Calories > config.Alerts.HighCalories {
		insights = append(insights, models.Insight{
			Type:    models.InsightInfo,
			Title:   "Calorie Watch",
			Message: "You're close to exceeding your daily calorie goal. Consider lighter meals for the rest of the day.",
		})
	}
	if totals.Calories < config.Alerts.LowCalories {
		insights = append(insights, models.Insight{
			Type:    models.InsightInfo,
			Title:   "Low Calories",
			Message: "Your calorie intake seems low. Make sure you're eating enough to fuel your activities.",
		})
	}

	if s.gemini != nil {
		if narrative, err := s.gemini.AnalyzeDiet(totals); err != nil {
			logger.Warn("ai insight unavailable", "err", err)
		} else {
			insights = append(insights, models.Insight{
				Type:    models.InsightAI,
				Title:   "AI Nutritionist Says",
				Message: narrative,
			})
		}
	}

	return insights
}

var hydrationTips = []string{
	"Remember to drink water! Aim for 8 glasses throughout the day.",
	"Stay hydrated! Water helps with digestion and energy levels.",
	"Don't forget your water intake! Keep a bottle with you.",
	"Hydration check: Have you had enough water today?",
}

// HydrationReminder picks one reminder from the fixed pool.
func HydrationReminder() string {
	return hydrationTips[rand.Intn(len(hydrationTips))]
}

// PortionAdvice brackets a meal by calories: large above 800, light below 300.
func PortionAdvice(calories float64) string {
	switch {
	case calories > 800:
		return "Large meal detected! Consider eating slowly and stopping when you feel 80% full."
	case calories < 300:
		return "Light meal! Make sure to have balanced snacks if you get hungry later."
	default:
		return "Portion size looks good! Remember to eat mindfully and enjoy your food."
	}
}
