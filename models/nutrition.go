package models

// FoodNutrition is the macro estimate for a single resolved food item.
// Immutable once returned by the resolver; copies of cached entries are
// handed out, never the cache's own record.
type FoodNutrition struct {
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Serving    string  `json:"serving"`
	IsEstimate bool    `json:"is_estimate,omitempty"`
}

// MealTotals is the field-wise sum of a meal's items, each value rounded
// to one decimal place.
type MealTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Insight types.
const (
	InsightWarning = "warning"
	InsightInfo    = "info"
	InsightAI      = "ai"
	InsightSuccess = "success"
)

type Insight struct {
	Type    string `json:"type"` // "warning" | "info" | "ai" | "success"
	Title   string `json:"title"`
	Message string `json:"message"`
}
