package models

import (
	"time"

	"github.com/google/uuid"
)

// Alert statuses.
const (
	AlertStatusActive       = "active"
	AlertStatusAcknowledged = "acknowledged"
	AlertStatusResolved     = "resolved"
)

// Alert is a monitoring alert raised against a state or district.
type Alert struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Type           string     `json:"type"`     // enrolment_backlog, auth_failure_spike, ...
	Severity       string     `json:"severity"` // low | medium | high | critical
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	StateCode      string     `json:"state_code" gorm:"index"`
	DistrictCode   string     `json:"district_code" gorm:"index"`
	Status         string     `json:"status" gorm:"index"`
	CreatedAt      time.Time  `json:"created_at"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
	AcknowledgedBy *uuid.UUID `json:"acknowledged_by,omitempty" gorm:"type:uuid"`
}

// AlertStats summarizes the alert queue for the dashboard header.
type AlertStats struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	Acknowledged int64 `json:"acknowledged"`
	Resolved     int64 `json:"resolved"`
	Critical     int64 `json:"critical"` // Active alerts with critical severity
}
