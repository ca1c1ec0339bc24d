package services

import "backend/models"

// Bundled nutrition table for common mess foods, per 100g serving.
// Consulted before any network lookup. Keys are lowercase and matched
// exactly first, then by substring (longest key wins).
type tableEntry struct {
	key      string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	fiber    float64
}

var nutritionTable = []tableEntry{
	{"rice", 130, 2.7, 28, 0.3, 0.4},
	{"roti", 71, 3, 15, 0.4, 2},
	{"chapati", 71, 3, 15, 0.4, 2},
	{"dal", 116, 9, 20, 0.5, 8},
	{"rajma", 140, 8.7, 25, 0.5, 6.4},
	{"chole", 164, 8.9, 27, 2.6, 7.6},
	{"paneer", 265, 18, 3.6, 20, 0},
	{"aloo", 77, 2, 17, 0.1, 2.2},
	{"paratha", 126, 3, 18, 5, 2},
	{"idli", 39, 2, 8, 0.3, 0.8},
	{"dosa", 133, 3.9, 22, 3.7, 1.6},
	{"poha", 76, 1.5, 17, 0.2, 0.6},
	{"upma", 85, 2.5, 16, 1.5, 1.2},
	{"samosa", 262, 4, 25, 17, 2},
	{"pakora", 150, 3, 12, 10, 2},
	{"sabzi", 60, 2, 10, 2, 3},
	{"curry", 150, 5, 15, 8, 3},
	{"biryani", 290, 8, 45, 8, 2},
	{"pulao", 200, 5, 35, 5, 2},
	{"raita", 60, 3, 6, 3, 0.5},
	{"salad", 25, 1, 5, 0.2, 2},
	{"pickle", 40, 0.5, 8, 1, 1},
	{"papad", 44, 1.5, 6, 2, 0.5},
	{"tea", 30, 0.5, 7, 0.5, 0},
	{"coffee", 2, 0.3, 0, 0, 0},
	{"milk", 60, 3.2, 4.5, 3.2, 0},
	{"curd", 60, 3.5, 4.7, 3.3, 0},
	{"yogurt", 60, 3.5, 4.7, 3.3, 0},
	{"egg", 68, 6, 0.6, 4.8, 0},
	{"bread", 79, 2.7, 15, 1, 0.8},
	{"butter", 102, 0.1, 0, 11.5, 0},
	{"jam", 56, 0.1, 14, 0, 0.2},
	{"banana", 89, 1.1, 23, 0.3, 2.6},
	{"apple", 52, 0.3, 14, 0.2, 2.4},
}

func (e tableEntry) nutrition(name string) models.FoodNutrition {
	return models.FoodNutrition{
		Name:     name,
		Calories: e.calories,
		Protein:  e.protein,
		Carbs:    e.carbs,
		Fat:      e.fat,
		Fiber:    e.fiber,
		Serving:  "100g",
	}
}
