package service

import (
	"time"

	"timeclock/internal/domain/entity"
)

// TimesheetRow pairs one day's punch record with its recomputed hours for
// report rendering.
type TimesheetRow struct {
	Record *entity.DayPunchRecord
	Hours  entity.HoursBreakdown
}

// TimesheetExporter renders an employee's punch history into a
// downloadable document.
type TimesheetExporter interface {
	// RenderXLSX renders the timesheet as an Excel workbook.
	RenderXLSX(employee *entity.Employee, from, to time.Time, rows []TimesheetRow, totals entity.HoursBreakdown) ([]byte, error)

	// RenderPDF renders the timesheet as a PDF document.
	RenderPDF(employee *entity.Employee, from, to time.Time, rows []TimesheetRow, totals entity.HoursBreakdown) ([]byte, error)
}
