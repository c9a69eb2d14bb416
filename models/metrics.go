package models

import (
	"time"

	"github.com/google/uuid"
)

// EnrolmentMetric is one aggregated data point: a count of events of one
// metric type for one district, month and age group.
type EnrolmentMetric struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StateCode    string    `json:"state_code" gorm:"index"`
	DistrictCode string    `json:"district_code" gorm:"index"`
	Year         int       `json:"year" gorm:"index"`
	Month        int       `json:"month"` // 1-12
	MetricType   string    `json:"metric_type"`
	AgeGroup     string    `json:"age_group"`
	Value        int64     `json:"value"`
	CreatedAt    time.Time `json:"created_at"`
}

// IndexScore is a derived 0-100 indicator per district and month.
type IndexScore struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StateCode    string    `json:"state_code" gorm:"index"`
	DistrictCode string    `json:"district_code" gorm:"index"`
	Year         int       `json:"year" gorm:"index"`
	Month        int       `json:"month"`
	IndexType    string    `json:"index_type"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

// KPIOverview is the dashboard's headline card payload.
type KPIOverview struct {
	TotalEnrolments        int64   `json:"total_enrolments"`         // Enrolments in the filtered window
	EnrolmentGrowthPercent float64 `json:"enrolment_growth_percent"` // % change vs the previous period
	TotalUpdates           int64   `json:"total_updates"`            // Demographic + biometric updates
	UpdateGrowthPercent    float64 `json:"update_growth_percent"`    // % change vs the previous period
	TotalAuthentications   int64   `json:"total_authentications"`    // Authentication transactions
	AuthGrowthPercent      float64 `json:"auth_growth_percent"`      // % change vs the previous period
	SaturationPercent      float64 `json:"saturation_percent"`       // Mean saturation index score
	ActiveAlerts           int     `json:"active_alerts"`            // Unacknowledged alerts in scope
}

// HeatmapCell is one district aggregate with its centroid for map pins.
type HeatmapCell struct {
	DistrictCode string  `json:"district_code"`
	DistrictName string  `json:"district_name"`
	StateCode    string  `json:"state_code"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Value        int64   `json:"value"`
	Percentage   float64 `json:"percentage"` // Share of the filtered total
}

// TrendPoint is one month in the 12-month trend series.
type TrendPoint struct {
	Month       string `json:"month"`        // Month abbreviation (Jan, Feb, etc.)
	MonthNumber int    `json:"month_number"` // Month number (1-12)
	Year        int    `json:"year"`
	Value       int64  `json:"value"`
}

// AgeBucket is one slice of the age distribution chart.
type AgeBucket struct {
	AgeGroup   string  `json:"age_group"`
	Value      int64   `json:"value"`
	Percentage float64 `json:"percentage"`
}

// IndexScoreRow is one district's score for the index table/chart.
type IndexScoreRow struct {
	DistrictCode string  `json:"district_code"`
	DistrictName string  `json:"district_name"`
	StateCode    string  `json:"state_code"`
	IndexType    string  `json:"index_type"`
	Score        float64 `json:"score"`
}
