package services

import (
	"math"
	"strings"
	"sync"

	"backend/logger"
	"backend/models"
)

// NutritionService resolves free-text food names to macro estimates:
// session cache, then the bundled table, then USDA, then a fixed fallback.
// A lookup never fails; external errors degrade to the fallback estimate.
type NutritionService struct {
	usda *USDAService

	mu    sync.RWMutex
	cache map[string]models.FoodNutrition
}

func NewNutritionService(usda *USDAService) *NutritionService {
	return &NutritionService{
		usda:  usda,
		cache: make(map[string]models.FoodNutrition),
	}
}

// Resolve returns the nutrition estimate for one food item. Whatever the
// outcome, it is cached under the normalized name for the session.
func (s *NutritionService) Resolve(item string) models.FoodNutrition {
	key := strings.ToLower(strings.TrimSpace(item))

	s.mu.RLock()
	hit, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return hit
	}

	n, ok := lookupTable(item, key)
	if !ok && s.usda != nil {
		remote, err := s.usda.SearchFood(item)
		if err != nil {
			logger.Warn("usda lookup failed", "item", item, "err", err)
		} else if remote != nil {
			n, ok = *remote, true
		}
	}
	if !ok {
		n = models.FoodNutrition{
			Name:       item,
			Calories:   150,
			Protein:    5,
			Carbs:      20,
			Fat:        5,
			Fiber:      2,
			Serving:    "100g",
			IsEstimate: true,
		}
	}

	s.mu.Lock()
	s.cache[key] = n
	s.mu.Unlock()
	return n
}

// ResolveMany resolves each item concurrently; the output order matches the
// input order regardless of completion order.
func (s *NutritionService) ResolveMany(items []string) []models.FoodNutrition {
	out := make([]models.FoodNutrition, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item string) {
			defer wg.Done()
			out[i] = s.Resolve(item)
		}(i, item)
	}
	wg.Wait()
	return out
}

// ClearCache drops every cached lookup.
func (s *NutritionService) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]models.FoodNutrition)
	s.mu.Unlock()
}

// lookupTable checks the bundled table: exact key first, then substring in
// either direction. Among substring candidates the longest key wins, ties
// broken by table order, so multi-word items like "chicken curry rice"
// resolve the same way every run.
func lookupTable(name, key string) (models.FoodNutrition, bool) {
	for _, e := range nutritionTable {
		if e.key == key {
			return e.nutrition(name), true
		}
	}

	var best *tableEntry
	for i := range nutritionTable {
		e := &nutritionTable[i]
		if strings.Contains(key, e.key) || strings.Contains(e.key, key) {
			if best == nil || len(e.key) > len(best.key) {
				best = e
			}
		}
	}
	if best != nil {
		return best.nutrition(name), true
	}
	return models.FoodNutrition{}, false
}

// AggregateTotals sums the five macro fields across items and rounds each
// total to one decimal place. Empty input yields all zeros.
func AggregateTotals(items []models.FoodNutrition) models.MealTotals {
	var t models.MealTotals
	for _, it := range items {
		t.Calories += it.Calories
		t.Protein += it.Protein
		t.Carbs += it.Carbs
		t.Fat += it.Fat
		t.Fiber += it.Fiber
	}
	t.Calories = round1(t.Calories)
	t.Protein = round1(t.Protein)
	t.Carbs = round1(t.Carbs)
	t.Fat = round1(t.Fat)
	t.Fiber = round1(t.Fiber)
	return t
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
