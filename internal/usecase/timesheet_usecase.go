package usecase

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// TimesheetDay pairs one day's punch record with its recomputed hours.
type TimesheetDay struct {
	Record *entity.DayPunchRecord `json:"record"`
	Hours  entity.HoursBreakdown  `json:"hours"`
}

// TimesheetOutput is an employee's punch history over a date range.
type TimesheetOutput struct {
	EmployeeID uuid.UUID      `json:"employee_id"`
	From       time.Time      `json:"from"`
	To         time.Time      `json:"to"`
	Days       []TimesheetDay `json:"days"`

	TotalHours    float64 `json:"total_hours"`
	NormalHours   float64 `json:"normal_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// TimesheetUsecase builds punch-history reports. Hour totals are always
// recomputed from the stored raw punch times.
type TimesheetUsecase interface {
	// Timesheet assembles the employee's records between two dates (inclusive).
	Timesheet(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (*TimesheetOutput, error)

	// ExportXLSX renders the timesheet as an Excel workbook.
	ExportXLSX(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]byte, error)

	// ExportPDF renders the timesheet as a PDF document.
	ExportPDF(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]byte, error)
}
