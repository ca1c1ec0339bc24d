package services

import (
	"context"
	"errors"
	"time"

	"backend/config"
	"backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryService owns all persisted state: the meal log, the per-day
// rollups derived from it, and the preferences row. Every multi-row write
// runs in one transaction so a meal can never land without its rollup.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// SaveMeal appends a meal (with per-item snapshots) and folds its totals
// into the calendar day's summary, atomically.
func (s *HistoryService) SaveMeal(
	ctx context.Context,
	items []models.FoodNutrition,
	totals models.MealTotals,
	insightNote string,
) (*models.Meal, error) {
	now := time.Now()

	meal := &models.Meal{
		AteAt:    now,
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Carbs:    totals.Carbs,
		Fat:      totals.Fat,
		Fiber:    totals.Fiber,
		Insights: insightNote,
	}
	for _, it := range items {
		meal.Items = append(meal.Items, models.MealItem{
			Name:       it.Name,
			Calories:   it.Calories,
			Protein:    it.Protein,
			Carbs:      it.Carbs,
			Fat:        it.Fat,
			Fiber:      it.Fiber,
			Serving:    it.Serving,
			IsEstimate: it.IsEstimate,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meal).Error; err != nil {
			return err
		}
		return upsertSummary(tx, dayStart(now), totals)
	})
	if err != nil {
		return nil, err
	}
	return meal, nil
}

func upsertSummary(tx *gorm.DB, day time.Time, totals models.MealTotals) error {
	var sum models.DailySummary
	err := tx.Where("date = ?", day).First(&sum).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sum = models.DailySummary{Date: day}
	} else if err != nil {
		return err
	}
	applyToSummary(&sum, totals)
	return tx.Save(&sum).Error
}

// applyToSummary folds one meal's totals into a day bucket.
func applyToSummary(sum *models.DailySummary, totals models.MealTotals) {
	sum.Calories += totals.Calories
	sum.Protein += totals.Protein
	sum.Carbs += totals.Carbs
	sum.Fat += totals.Fat
	sum.Fiber += totals.Fiber
	sum.MealCount++
}

// AllMeals returns every saved meal in insertion order.
func (s *HistoryService) AllMeals(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Order("id ASC").
		Find(&meals).Error
	return meals, err
}

// RecentMeals returns meals eaten within the last `days` days.
func (s *HistoryService) RecentMeals(ctx context.Context, days int) ([]models.Meal, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	var meals []models.Meal
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("ate_at >= ?", cutoff).
		Order("id ASC").
		Find(&meals).Error
	return meals, err
}

// TodaySummary returns today's rollup, or nil when nothing is logged yet.
func (s *HistoryService) TodaySummary(ctx context.Context) (*models.DailySummary, error) {
	var sum models.DailySummary
	err := s.db.WithContext(ctx).
		Where("date = ?", dayStart(time.Now())).
		First(&sum).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

// ClearAll wipes the meal log and summaries. Hard deletes, so the unique
// date index is free for the next save. Irreversible.
func (s *HistoryService) ClearAll(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&models.MealItem{}, &models.Meal{}, &models.DailySummary{}} {
			if err := tx.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Snapshot is the export/import payload: full meal log plus day rollups.
type Snapshot struct {
	ID         string                `json:"id,omitempty"`
	ExportedAt time.Time             `json:"exported_at"`
	Meals      []models.Meal         `json:"meals,omitempty"`
	Summaries  []models.DailySummary `json:"summaries,omitempty"`
}

// Export captures all persisted history for backup.
func (s *HistoryService) Export(ctx context.Context) (*Snapshot, error) {
	meals, err := s.AllMeals(ctx)
	if err != nil {
		return nil, err
	}
	var summaries []models.DailySummary
	if err := s.db.WithContext(ctx).Order("date ASC").Find(&summaries).Error; err != nil {
		return nil, err
	}
	return &Snapshot{
		ID:         uuid.NewString(),
		ExportedAt: time.Now(),
		Meals:      meals,
		Summaries:  summaries,
	}, nil
}

// Import replaces whichever sections the snapshot carries; an absent
// section leaves existing state untouched.
func (s *HistoryService) Import(ctx context.Context, snap *Snapshot) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if snap.Meals != nil {
			for _, m := range []any{&models.MealItem{}, &models.Meal{}} {
				if err := tx.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
					return err
				}
			}
			for i := range snap.Meals {
				meal := snap.Meals[i]
				meal.ID = 0
				for j := range meal.Items {
					meal.Items[j].ID = 0
					meal.Items[j].MealID = 0
				}
				if err := tx.Create(&meal).Error; err != nil {
					return err
				}
			}
		}
		if snap.Summaries != nil {
			if err := tx.Unscoped().Where("1 = 1").Delete(&models.DailySummary{}).Error; err != nil {
				return err
			}
			for i := range snap.Summaries {
				sum := snap.Summaries[i]
				sum.ID = 0
				if err := tx.Create(&sum).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// RebuildSummaries recomputes every day rollup from the meal log. The log
// is the authoritative record; this repairs any drift in the derived table.
func (s *HistoryService) RebuildSummaries(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.DailySummary{}).Error; err != nil {
			return err
		}
		var meals []models.Meal
		if err := tx.Order("id ASC").Find(&meals).Error; err != nil {
			return err
		}
		byDay := map[time.Time]*models.DailySummary{}
		var order []time.Time
		for _, m := range meals {
			day := dayStart(m.AteAt)
			sum, ok := byDay[day]
			if !ok {
				sum = &models.DailySummary{Date: day}
				byDay[day] = sum
				order = append(order, day)
			}
			applyToSummary(sum, m.Totals())
		}
		for _, day := range order {
			if err := tx.Create(byDay[day]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetPreferences returns the single preferences row, creating it with the
// default daily goals on first use.
func (s *HistoryService) GetPreferences(ctx context.Context) (*models.Preference, error) {
	var pref models.Preference
	err := s.db.WithContext(ctx).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		pref = models.Preference{
			Calories: config.DefaultGoals.Calories,
			Protein:  config.DefaultGoals.Protein,
			Carbs:    config.DefaultGoals.Carbs,
			Fat:      config.DefaultGoals.Fat,
			Fiber:    config.DefaultGoals.Fiber,
			Water:    config.DefaultGoals.Water,
		}
		if err := s.db.WithContext(ctx).Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpdatePreferences overwrites the preferences row with the given values.
func (s *HistoryService) UpdatePreferences(ctx context.Context, in *models.Preference) (*models.Preference, error) {
	pref, err := s.GetPreferences(ctx)
	if err != nil {
		return nil, err
	}
	pref.Calories = in.Calories
	pref.Protein = in.Protein
	pref.Carbs = in.Carbs
	pref.Fat = in.Fat
	pref.Fiber = in.Fiber
	pref.Water = in.Water
	pref.ReportEmail = in.ReportEmail
	if err := s.db.WithContext(ctx).Save(pref).Error; err != nil {
		return nil, err
	}
	return pref, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
