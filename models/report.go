package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Report statuses.
const (
	ReportStatusPending   = "pending"
	ReportStatusCompleted = "completed"
	ReportStatusFailed    = "failed"
)

// Report is a generated dashboard report. Parameters stores the filter set
// the report was generated with, exactly as requested (JSONB).
type Report struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string         `json:"title"`
	ReportType  string         `json:"report_type"` // enrolment_summary | saturation | alert_digest
	Parameters  datatypes.JSON `json:"parameters"`
	Status      string         `json:"status" gorm:"index"`
	RequestedBy uuid.UUID      `json:"requested_by" gorm:"type:uuid;index"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// GenerateReportRequest is the body for POST /admin/reports.
type GenerateReportRequest struct {
	Title      string            `json:"title" binding:"required"`
	ReportType string            `json:"report_type" binding:"required"`
	Filters    map[string]string `json:"filters"`
}
