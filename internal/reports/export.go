package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExportFilename names the downloaded workbook after the report type and
// range, e.g. "attendance-report-month.xlsx".
func ExportFilename(f Filter) string {
	reportType := f.ReportType
	if reportType == "" {
		reportType = "summary"
	}
	dateRange := f.DateRange
	if dateRange == "" {
		dateRange = "month"
	}
	return fmt.Sprintf("%s-report-%s.xlsx", strings.ToLower(reportType), strings.ToLower(dateRange))
}

// WriteXLSX writes the snapshot as a workbook: one metrics sheet plus one
// sheet per chart.
func WriteXLSX(w io.Writer, snap Snapshot, f Filter) error {
	wb := excelize.NewFile()
	defer wb.Close()

	const metricsSheet = "Metrics"
	wb.SetSheetName("Sheet1", metricsSheet)
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Report Type", f.ReportType},
		{"Date Range", f.DateRange},
		{"Attendance Rate (%)", snap.AttendanceRate},
		{"Leave Utilization (%)", snap.LeaveUtilization},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := wb.SetSheetRow(metricsSheet, cell, &row); err != nil {
			return err
		}
	}

	charts := []struct {
		name  string
		chart Chart
	}{
		{"Attendance Trend", snap.Attendance},
		{"Leave Distribution", snap.Leave},
		{"Department Performance", snap.Department},
	}
	for _, c := range charts {
		if _, err := wb.NewSheet(c.name); err != nil {
			return err
		}
		header := []interface{}{"Label", valueHeader(c.chart)}
		if err := wb.SetSheetRow(c.name, "A1", &header); err != nil {
			return err
		}
		for i, label := range c.chart.Labels {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			row := []interface{}{label, c.chart.Data[i]}
			if err := wb.SetSheetRow(c.name, cell, &row); err != nil {
				return err
			}
		}
	}

	return wb.Write(w)
}

func valueHeader(c Chart) string {
	if c.Label != "" {
		return c.Label
	}
	return "Value"
}
