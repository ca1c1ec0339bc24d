package models

import (
	"time"

	"gorm.io/gorm"
)

// One saved meal with its analyzed totals. Immutable after save; removed
// only by a bulk clear.
type Meal struct {
	gorm.Model
	AteAt    time.Time  `gorm:"index;not null" json:"ate_at"`
	Calories float64    `json:"calories"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
	Fiber    float64    `json:"fiber"`
	Insights string     `gorm:"type:text" json:"insights"`
	Items    []MealItem `json:"items"`
}

// MealItem keeps the per-item nutrition snapshot the resolver produced at
// analysis time, so history survives lookup-table or API changes.
type MealItem struct {
	gorm.Model
	MealID     uint    `gorm:"index" json:"meal_id"`
	Name       string  `gorm:"not null" json:"name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Fiber      float64 `json:"fiber"`
	Serving    string  `json:"serving"`
	IsEstimate bool    `json:"is_estimate"`
}

func (m *Meal) Totals() MealTotals {
	return MealTotals{
		Calories: m.Calories,
		Protein:  m.Protein,
		Carbs:    m.Carbs,
		Fat:      m.Fat,
		Fiber:    m.Fiber,
	}
}
