package services

import (
	"testing"
	"time"

	"backend/models"
)

func TestApplyToSummaryAccumulates(t *testing.T) {
	sum := models.DailySummary{Date: day(t, "2026-08-26")}
	meals := []models.MealTotals{
		{Calories: 500, Protein: 20, Carbs: 60, Fat: 15, Fiber: 5},
		{Calories: 300, Protein: 10, Carbs: 40, Fat: 8, Fiber: 3},
		{Calories: 200, Protein: 5, Carbs: 25, Fat: 4, Fiber: 2},
	}
	for _, m := range meals {
		applyToSummary(&sum, m)
	}

	if sum.Calories != 1000 || sum.Protein != 35 || sum.Carbs != 125 || sum.Fat != 27 || sum.Fiber != 10 {
		t.Errorf("summary totals = %+v", sum)
	}
	if sum.MealCount != 3 {
		t.Errorf("MealCount = %d, want 3", sum.MealCount)
	}
}

func TestDayStartTruncates(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	in := time.Date(2026, 8, 26, 23, 59, 58, 123, loc)

	got := dayStart(in)
	want := time.Date(2026, 8, 26, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("dayStart = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("dayStart changed location to %v", got.Location())
	}

	// meals at opposite ends of a day land in the same bucket
	if !dayStart(in).Equal(dayStart(time.Date(2026, 8, 26, 0, 0, 1, 0, loc))) {
		t.Error("same calendar day must share one bucket")
	}
}

func TestMealTotalsRoundTrip(t *testing.T) {
	meal := models.Meal{Calories: 640.5, Protein: 31.2, Carbs: 80, Fat: 18.4, Fiber: 6.1}
	got := meal.Totals()
	want := models.MealTotals{Calories: 640.5, Protein: 31.2, Carbs: 80, Fat: 18.4, Fiber: 6.1}
	if got != want {
		t.Errorf("Totals = %+v, want %+v", got, want)
	}
}
