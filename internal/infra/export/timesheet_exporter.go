// Package export renders timesheet reports into downloadable documents.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
)

const dateLayout = "2006-01-02"

type timesheetExporter struct{}

// NewTimesheetExporter creates an exporter rendering XLSX and PDF timesheets.
func NewTimesheetExporter() service.TimesheetExporter {
	return &timesheetExporter{}
}

// RenderXLSX renders the timesheet as an Excel workbook with a summary
// sheet and a per-day detail sheet.
func (e *timesheetExporter) RenderXLSX(employee *entity.Employee, from, to time.Time, rows []service.TimesheetRow, totals entity.HoursBreakdown) ([]byte, error) {
	f := excelize.NewFile()
	summarySheet := "summary"
	daysSheet := "days"
	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(daysSheet)

	_ = f.SetCellValue(summarySheet, "A1", "Timesheet")
	_ = f.SetCellValue(summarySheet, "A3", "Employee")
	_ = f.SetCellValue(summarySheet, "B3", employee.Name)
	_ = f.SetCellValue(summarySheet, "A4", "Email")
	_ = f.SetCellValue(summarySheet, "B4", employee.Email)
	_ = f.SetCellValue(summarySheet, "A5", "From")
	_ = f.SetCellValue(summarySheet, "B5", from.Format(dateLayout))
	_ = f.SetCellValue(summarySheet, "A6", "To")
	_ = f.SetCellValue(summarySheet, "B6", to.Format(dateLayout))
	_ = f.SetCellValue(summarySheet, "A7", "Total Hours")
	_ = f.SetCellValue(summarySheet, "B7", totals.TotalHours)
	_ = f.SetCellValue(summarySheet, "A8", "Normal Hours")
	_ = f.SetCellValue(summarySheet, "B8", totals.NormalHours)
	_ = f.SetCellValue(summarySheet, "A9", "Overtime Hours")
	_ = f.SetCellValue(summarySheet, "B9", totals.OvertimeHours)

	headers := []string{"Date", "Clock In", "Lunch Start", "Lunch End", "Clock Out", "Location", "Total", "Normal", "Overtime"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(daysSheet, cell, header)
	}
	for i, row := range rows {
		r := i + 2
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("A%d", r), row.Record.Date.Format(dateLayout))
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("B%d", r), row.Record.TimeOf(entity.PunchClockIn))
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("C%d", r), row.Record.TimeOf(entity.PunchLunchStart))
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("D%d", r), row.Record.TimeOf(entity.PunchLunchEnd))
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("E%d", r), row.Record.TimeOf(entity.PunchClockOut))
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("F%d", r), stampLocation(row.Record))
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("G%d", r), row.Hours.TotalHours)
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("H%d", r), row.Hours.NormalHours)
		_ = f.SetCellValue(daysSheet, fmt.Sprintf("I%d", r), row.Hours.OvertimeHours)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// RenderPDF renders the timesheet as a PDF document.
func (e *timesheetExporter) RenderPDF(employee *entity.Employee, from, to time.Time, rows []service.TimesheetRow, totals entity.HoursBreakdown) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Timesheet")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Employee: %s", employee.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Email: %s", employee.Email))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Range: %s - %s", from.Format(dateLayout), to.Format(dateLayout)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total: %.2fh (normal %.2fh, overtime %.2fh)",
		totals.TotalHours, totals.NormalHours, totals.OvertimeHours))
	pdf.Ln(8)

	// Days table
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(24, 6, "Date", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "In", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "Lunch", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "Back", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "Out", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Location", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(18, 6, "OT", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, row := range rows {
		pdf.CellFormat(24, 6, row.Record.Date.Format(dateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, row.Record.TimeOf(entity.PunchClockIn), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, row.Record.TimeOf(entity.PunchLunchStart), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, row.Record.TimeOf(entity.PunchLunchEnd), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, row.Record.TimeOf(entity.PunchClockOut), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, stampLocation(row.Record), "1", 0, "C", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", row.Hours.TotalHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(18, 6, fmt.Sprintf("%.2f", row.Hours.OvertimeHours), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// stampLocation reports the location of the day's first punch; all punches
// of a day are usually stamped at the same site.
func stampLocation(record *entity.DayPunchRecord) string {
	if record.ClockIn != nil {
		return record.ClockIn.LocationName
	}

	return ""
}
