package services

import (
	"context"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// TrendService derives weekly statistics and chart-ready trend rows from
// the stored day rollups.
type TrendService struct {
	db          *gorm.DB
	calorieGoal float64
}

func NewTrendService(db *gorm.DB, calorieGoal float64) *TrendService {
	return &TrendService{db: db, calorieGoal: calorieGoal}
}

type WeeklyStats struct {
	TotalMeals  int     `json:"total_meals"`
	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgCarbs    float64 `json:"avg_carbs"`
	AvgFat      float64 `json:"avg_fat"`
	BestDay     string  `json:"best_day,omitempty"`
}

// TrendPoint is one calendar day for the 7-day chart, zero-valued when the
// day has no saved meals.
type TrendPoint struct {
	Date      string  `json:"date"`
	Label     string  `json:"label"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
	Fiber     float64 `json:"fiber"`
	MealCount int     `json:"meal_count"`
}

// WeeklyStats aggregates the trailing 7 calendar days (today inclusive).
// Averages divide by the number of days that actually have data, not 7.
func (s *TrendService) WeeklyStats(ctx context.Context) (*WeeklyStats, error) {
	rows, err := s.lastWeekRows(ctx)
	if err != nil {
		return nil, err
	}
	stats := computeWeeklyStats(rows, s.calorieGoal)
	return &stats, nil
}

// computeWeeklyStats reduces day rollups (in date order) to totals,
// per-populated-day averages, and the best day by health score
// protein - |calories - goal| / 100. Strictly-greater comparison, so the
// earliest of tied days wins.
func computeWeeklyStats(rows []models.DailySummary, calorieGoal float64) WeeklyStats {
	if len(rows) == 0 {
		return WeeklyStats{}
	}

	var stats WeeklyStats
	var calories, protein, carbs, fat float64
	bestScore := math.Inf(-1)
	for _, r := range rows {
		stats.TotalMeals += r.MealCount
		calories += r.Calories
		protein += r.Protein
		carbs += r.Carbs
		fat += r.Fat

		score := r.Protein - math.Abs(r.Calories-calorieGoal)/100
		if score > bestScore {
			bestScore = score
			stats.BestDay = dateKey(r.Date)
		}
	}

	n := float64(len(rows))
	stats.AvgCalories = math.Round(calories / n)
	stats.AvgProtein = math.Round(protein / n)
	stats.AvgCarbs = math.Round(carbs / n)
	stats.AvgFat = math.Round(fat / n)
	return stats
}

// TrendData returns exactly 7 entries, six days ago through today, oldest
// first, regardless of how much history exists.
func (s *TrendService) TrendData(ctx context.Context) ([]TrendPoint, error) {
	rows, err := s.lastWeekRows(ctx)
	if err != nil {
		return nil, err
	}
	return buildTrend(rows, time.Now()), nil
}

func buildTrend(rows []models.DailySummary, now time.Time) []TrendPoint {
	idx := make(map[string]models.DailySummary, len(rows))
	for _, r := range rows {
		idx[dateKey(r.Date)] = r
	}

	points := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		d := dayStart(now).AddDate(0, 0, -i)
		key := dateKey(d)
		r := idx[key] // zero value when the day has no data
		points = append(points, TrendPoint{
			Date:      key,
			Label:     d.Format("Jan 2"),
			Calories:  r.Calories,
			Protein:   r.Protein,
			Carbs:     r.Carbs,
			Fat:       r.Fat,
			Fiber:     r.Fiber,
			MealCount: r.MealCount,
		})
	}
	return points
}

func (s *TrendService) lastWeekRows(ctx context.Context) ([]models.DailySummary, error) {
	from := dayStart(time.Now()).AddDate(0, 0, -6)
	var rows []models.DailySummary
	err := s.db.WithContext(ctx).
		Where("date >= ?", from).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }
