package models

import "gorm.io/gorm"

// Preference is the single local profile's settings row. One row per
// deployment; created with defaults on first read.
type Preference struct {
	gorm.Model
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	Fiber       float64 `json:"fiber"`
	Water       float64 `json:"water"`
	ReportEmail string  `json:"report_email"`
}
