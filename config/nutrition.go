package config

// DailyGoals are the fixed intake targets used for health scoring and the
// default preferences row. Values mirror common guidance for a 2000 kcal diet.
type DailyGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"` // grams
	Carbs    float64 `json:"carbs"`   // grams
	Fat      float64 `json:"fat"`     // grams
	Fiber    float64 `json:"fiber"`   // grams
	Water    float64 `json:"water"`   // glasses
}

var DefaultGoals = DailyGoals{
	Calories: 2000,
	Protein:  50,
	Carbs:    275,
	Fat:      65,
	Fiber:    25,
	Water:    8,
}

// AlertThresholds drive the rule-based insights. Comparisons are strict:
// a value exactly at the threshold does not fire.
type AlertThresholds struct {
	HighCarbs    float64
	LowProtein   float64
	HighCalories float64
	LowCalories  float64
}

var Alerts = AlertThresholds{
	HighCarbs:    300,
	LowProtein:   30,
	HighCalories: 2500,
	LowCalories:  1200,
}

// Prompt templates sent to the generative-text service. The dynamic part is
// appended to the template by the caller.
const (
	PromptCleanMenu = `You are a nutrition expert. Extract and clean the following mess menu text.
List only the food items, one per line, with proper names. Remove any prices, timings, or extra text.
Menu text: `

	PromptClassifyFood = `Classify the following food items into categories (Breakfast, Lunch, Dinner, Snacks, Beverages).
Also identify the main ingredients and cooking method. Return as JSON.
Food items: `

	PromptAnalyzeDiet = `As a friendly nutritionist, analyze this daily meal data and provide insights:
- Highlight any nutritional patterns (high carbs, low protein, etc.)
- Suggest 2-3 healthier alternatives
- Give hydration reminders if needed
- Provide portion advice
- Be conversational and encouraging

Meal data: `

	PromptChatResponse = `You are a friendly college nutritionist chatbot helping students eat healthier.
Respond in a warm, conversational tone. Provide practical advice for college mess food.
Keep responses concise (2-3 sentences). User question: `
)
