package models

import (
	"time"

	"gorm.io/gorm"
)

// DailySummary is the running rollup for all meals saved on one calendar
// date. Date is truncated to midnight local time. Invariant: equals the
// field-wise sum of the meals whose AteAt falls on that day.
type DailySummary struct {
	gorm.Model
	Date      time.Time `gorm:"uniqueIndex;not null" json:"date"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	Fiber     float64   `json:"fiber"`
	MealCount int       `json:"meal_count"`
}
