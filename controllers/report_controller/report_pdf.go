package report_controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/rajstories/Aadhaar-Intelligence-System/config"
	"github.com/rajstories/Aadhaar-Intelligence-System/models"
)

// reportRow is one line of the report body table.
type reportRow struct {
	Label string
	Value string
}

// filtersFromParameters rebuilds the applied filter set from the JSON the
// report was generated with. Uses the same wire names as the query string.
func filtersFromParameters(params []byte) models.AppliedFilters {
	var raw map[string]string
	if err := json.Unmarshal(params, &raw); err != nil {
		return models.AppliedFilters{}
	}

	f := models.AppliedFilters{
		State:      raw["state"],
		District:   raw["district"],
		MetricType: raw["metricType"],
		AgeGroup:   raw["ageGroup"],
		IndexType:  raw["indexType"],
	}
	if year, err := strconv.Atoi(raw["year"]); err == nil && year > 0 {
		f.Year = year
	}
	if month, err := strconv.Atoi(raw["month"]); err == nil && month >= 1 && month <= 12 {
		f.Month = month
	}
	return f
}

// filterSummaryLines renders the filter set as "Label: value" lines for the
// PDF header and the email body.
func filterSummaryLines(f models.AppliedFilters) []string {
	var lines []string
	if f.State != "" {
		lines = append(lines, fmt.Sprintf("State: %s", f.State))
	}
	if f.District != "" {
		lines = append(lines, fmt.Sprintf("District: %s", f.District))
	}
	if f.Year != 0 {
		lines = append(lines, fmt.Sprintf("Year: %d", f.Year))
	}
	if f.Month != 0 {
		lines = append(lines, fmt.Sprintf("Month: %s", models.MonthLabels[f.Month-1]))
	}
	if f.MetricType != "" {
		lines = append(lines, fmt.Sprintf("Metric type: %s", f.MetricType))
	}
	if f.AgeGroup != "" {
		lines = append(lines, fmt.Sprintf("Age group: %s", f.AgeGroup))
	}
	if f.IndexType != "" {
		lines = append(lines, fmt.Sprintf("Index type: %s", f.IndexType))
	}
	return lines
}

// collectReportRows queries the body data for a report, by report type.
func collectReportRows(ctx context.Context, report *models.Report) ([]reportRow, error) {
	filters := filtersFromParameters(report.Parameters)

	switch report.ReportType {
	case "saturation":
		if filters.IndexType == "" {
			filters.IndexType = "saturation"
		}
		var scores []models.IndexScoreRow
		if err := filters.IndexScope(config.AisGorm.WithContext(ctx).Model(&models.IndexScore{})).
			Select(`DISTINCT ON (index_scores.district_code)
				index_scores.district_code,
				districts.name AS district_name,
				index_scores.score`).
			Joins("LEFT JOIN districts ON districts.code = index_scores.district_code").
			Order("index_scores.district_code, index_scores.year DESC, index_scores.month DESC").
			Limit(50).
			Scan(&scores).Error; err != nil {
			return nil, err
		}
		rows := make([]reportRow, 0, len(scores))
		for _, s := range scores {
			name := s.DistrictName
			if name == "" {
				name = s.DistrictCode
			}
			rows = append(rows, reportRow{Label: name, Value: fmt.Sprintf("%.1f", s.Score)})
		}
		return rows, nil

	case "alert_digest":
		type sevCount struct {
			Severity string
			Count    int64
		}
		var counts []sevCount
		db := config.AisGorm.WithContext(ctx).Model(&models.Alert{}).
			Where("status = ?", models.AlertStatusActive)
		if filters.State != "" {
			db = db.Where("state_code = ?", filters.State)
		}
		if filters.District != "" {
			db = db.Where("district_code = ?", filters.District)
		}
		if err := db.
			Select("severity, COUNT(*) AS count").
			Group("severity").
			Order("severity ASC").
			Scan(&counts).Error; err != nil {
			return nil, err
		}
		rows := make([]reportRow, 0, len(counts))
		for _, sc := range counts {
			rows = append(rows, reportRow{
				Label: fmt.Sprintf("Active alerts (%s)", sc.Severity),
				Value: strconv.FormatInt(sc.Count, 10),
			})
		}
		return rows, nil

	default: // enrolment_summary
		type metricTotal struct {
			MetricType string
			Total      int64
		}
		// Metric type is the grouping key for the summary table.
		filters.MetricType = ""
		var totals []metricTotal
		if err := filters.Scope(config.AisGorm.WithContext(ctx).Model(&models.EnrolmentMetric{})).
			Select("metric_type, COALESCE(SUM(value), 0)::bigint AS total").
			Group("metric_type").
			Order("metric_type ASC").
			Scan(&totals).Error; err != nil {
			return nil, err
		}
		rows := make([]reportRow, 0, len(totals))
		for _, t := range totals {
			rows = append(rows, reportRow{Label: t.MetricType, Value: strconv.FormatInt(t.Total, 10)})
		}
		return rows, nil
	}
}

// generateReportPDF renders a report to an in-memory PDF.
func generateReportPDF(report *models.Report, filterLines []string, rows []reportRow) *bytes.Buffer {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("AADHAAR INTELLIGENCE SYSTEM", props.Text{
				Size:  18,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text(report.Title, props.Text{
				Size:  14,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Report type: %s", report.ReportType), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Generated: %s", report.CreatedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Filter summary
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text("APPLIED FILTERS", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	if len(filterLines) == 0 {
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text("No filters applied (nationwide)", props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}
	for _, line := range filterLines {
		line := line
		m.Row(5, func() {
			m.Col(12, func() {
				m.Text(line, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
		})
	}

	m.Row(8, func() {})

	// Body table
	m.Row(6, func() {
		m.Col(8, func() {
			m.Text("Item", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
		m.Col(4, func() {
			m.Text("Value", props.Text{
				Size:  8,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
	})

	if len(rows) == 0 {
		m.Row(6, func() {
			m.Col(12, func() {
				m.Text("No data matched the applied filters", props.Text{
					Size:  9,
					Color: mediumGray,
				})
			})
		})
	}
	for _, row := range rows {
		row := row
		m.Row(6, func() {
			m.Col(8, func() {
				m.Text(row.Label, props.Text{
					Size:  9,
					Color: darkGray,
				})
			})
			m.Col(4, func() {
				m.Text(row.Value, props.Text{
					Size:  9,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Generated by the AIS monitoring dashboard", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		log.Printf("[admin.report-pdf] failed to generate PDF: %v", err)
		return bytes.NewBuffer(nil)
	}

	return &buf
}
