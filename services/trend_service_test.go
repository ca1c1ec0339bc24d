package services

import (
	"testing"
	"time"

	"backend/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestComputeWeeklyStats(t *testing.T) {
	goal := 2000.0

	t.Run("no rows yields zero stats and no best day", func(t *testing.T) {
		got := computeWeeklyStats(nil, goal)
		if got != (WeeklyStats{}) {
			t.Errorf("computeWeeklyStats(nil) = %+v", got)
		}
	})

	t.Run("single day is its own best even with a negative score", func(t *testing.T) {
		rows := []models.DailySummary{
			{Date: day(t, "2026-08-20"), Calories: 500, Protein: 2, MealCount: 3},
		}
		got := computeWeeklyStats(rows, goal)
		// score = 2 - |500-2000|/100 = -13, still the best of one
		if got.BestDay != "2026-08-20" {
			t.Errorf("BestDay = %q, want 2026-08-20", got.BestDay)
		}
		if got.TotalMeals != 3 || got.AvgCalories != 500 {
			t.Errorf("stats = %+v", got)
		}
	})

	t.Run("averages divide by populated days only", func(t *testing.T) {
		rows := []models.DailySummary{
			{Date: day(t, "2026-08-20"), Calories: 1800, Protein: 55, Carbs: 210, Fat: 60, MealCount: 3},
			{Date: day(t, "2026-08-22"), Calories: 2100, Protein: 40, Carbs: 260, Fat: 71, MealCount: 2},
		}
		got := computeWeeklyStats(rows, goal)
		if got.TotalMeals != 5 {
			t.Errorf("TotalMeals = %d, want 5", got.TotalMeals)
		}
		// (1800+2100)/2 = 1950, (55+40)/2 = 47.5 rounds to 48
		if got.AvgCalories != 1950 || got.AvgProtein != 48 || got.AvgCarbs != 235 || got.AvgFat != 66 {
			t.Errorf("averages = %+v", got)
		}
	})

	t.Run("best day maximizes protein minus calorie distance", func(t *testing.T) {
		rows := []models.DailySummary{
			{Date: day(t, "2026-08-20"), Calories: 2000, Protein: 30}, // score 30
			{Date: day(t, "2026-08-21"), Calories: 1500, Protein: 60}, // score 55
			{Date: day(t, "2026-08-22"), Calories: 2600, Protein: 70}, // score 64
		}
		got := computeWeeklyStats(rows, goal)
		if got.BestDay != "2026-08-22" {
			t.Errorf("BestDay = %q, want 2026-08-22", got.BestDay)
		}
	})

	t.Run("tie keeps the earlier day", func(t *testing.T) {
		rows := []models.DailySummary{
			{Date: day(t, "2026-08-20"), Calories: 2000, Protein: 50},
			{Date: day(t, "2026-08-21"), Calories: 2000, Protein: 50},
		}
		got := computeWeeklyStats(rows, goal)
		if got.BestDay != "2026-08-20" {
			t.Errorf("BestDay = %q, want the earlier of tied days", got.BestDay)
		}
	})
}

func TestBuildTrend(t *testing.T) {
	now := day(t, "2026-08-26").Add(14 * time.Hour) // mid-afternoon

	t.Run("no history still yields seven zero days", func(t *testing.T) {
		got := buildTrend(nil, now)
		if len(got) != 7 {
			t.Fatalf("len = %d, want 7", len(got))
		}
		if got[0].Date != "2026-08-20" || got[6].Date != "2026-08-26" {
			t.Errorf("range = %s..%s, want 2026-08-20..2026-08-26", got[0].Date, got[6].Date)
		}
		for _, p := range got {
			if p.Calories != 0 || p.MealCount != 0 {
				t.Errorf("empty day %s should be zero: %+v", p.Date, p)
			}
		}
	})

	t.Run("rows land on their calendar slots", func(t *testing.T) {
		rows := []models.DailySummary{
			{Date: day(t, "2026-08-21"), Calories: 1800, Protein: 50, MealCount: 3},
			{Date: day(t, "2026-08-26"), Calories: 900, Protein: 20, MealCount: 1},
		}
		got := buildTrend(rows, now)
		if got[1].Calories != 1800 || got[1].MealCount != 3 {
			t.Errorf("slot for 08-21 = %+v", got[1])
		}
		if got[6].Calories != 900 || got[6].MealCount != 1 {
			t.Errorf("slot for today = %+v", got[6])
		}
		if got[0].Calories != 0 || got[5].Calories != 0 {
			t.Error("days without rows should stay zero")
		}
		if got[6].Label != "Aug 26" {
			t.Errorf("Label = %q, want Aug 26", got[6].Label)
		}
	})

	t.Run("rows outside the window are ignored", func(t *testing.T) {
		rows := []models.DailySummary{
			{Date: day(t, "2026-08-10"), Calories: 5000, MealCount: 9},
		}
		got := buildTrend(rows, now)
		for _, p := range got {
			if p.Calories != 0 {
				t.Errorf("stale row leaked into %s: %+v", p.Date, p)
			}
		}
	})
}
