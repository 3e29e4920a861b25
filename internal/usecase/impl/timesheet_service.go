package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timeclock/internal/domain/entity"
	domainerrors "timeclock/internal/domain/errors"
	"timeclock/internal/domain/repository"
	"timeclock/internal/domain/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
)

// ErrInvalidDateRange is returned when the range end precedes the start
var ErrInvalidDateRange = errors.New("date range end precedes start")

type timesheetService struct {
	punchRepo    repository.PunchRepository
	employeeRepo repository.EmployeeRepository
	hours        service.HoursCalculator
	exporter     service.TimesheetExporter
}

// NewTimesheetService creates a new timesheet reporting service
func NewTimesheetService(
	punchRepo repository.PunchRepository,
	employeeRepo repository.EmployeeRepository,
	hours service.HoursCalculator,
	exporter service.TimesheetExporter,
) usecase.TimesheetUsecase {
	return &timesheetService{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		hours:        hours,
		exporter:     exporter,
	}
}

// Timesheet assembles the employee's records between two dates. Hour
// totals are recomputed from the stored raw punch times on every call so
// a calculation change is reflected in historical reports.
func (s *timesheetService) Timesheet(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (*usecase.TimesheetOutput, error) {
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	records, err := s.punchRepo.ListRecordsByRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch records: %w", err)
	}

	out := &usecase.TimesheetOutput{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Days:       make([]usecase.TimesheetDay, 0, len(records)),
	}

	for _, record := range records {
		hours := s.hours.FromRecord(record)
		out.Days = append(out.Days, usecase.TimesheetDay{Record: record, Hours: hours})
		out.TotalHours += hours.TotalHours
		out.NormalHours += hours.NormalHours
		out.OvertimeHours += hours.OvertimeHours
	}

	return out, nil
}

// ExportXLSX renders the timesheet as an Excel workbook.
func (s *timesheetService) ExportXLSX(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]byte, error) {
	employee, sheet, err := s.buildExport(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.RenderXLSX(employee, from, to, sheet.rows, sheet.totals)
	if err != nil {
		return nil, fmt.Errorf("failed to render XLSX timesheet: %w", err)
	}

	return data, nil
}

// ExportPDF renders the timesheet as a PDF document.
func (s *timesheetService) ExportPDF(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]byte, error) {
	employee, sheet, err := s.buildExport(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	data, err := s.exporter.RenderPDF(employee, from, to, sheet.rows, sheet.totals)
	if err != nil {
		return nil, fmt.Errorf("failed to render PDF timesheet: %w", err)
	}

	return data, nil
}

type exportSheet struct {
	rows   []service.TimesheetRow
	totals entity.HoursBreakdown
}

func (s *timesheetService) buildExport(ctx context.Context, employeeID uuid.UUID, from, to time.Time) (*entity.Employee, *exportSheet, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, nil, domainerrors.ErrEmployeeNotFound
		}

		return nil, nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}

	report, err := s.Timesheet(ctx, employeeID, from, to)
	if err != nil {
		return nil, nil, err
	}

	sheet := &exportSheet{
		rows: make([]service.TimesheetRow, 0, len(report.Days)),
		totals: entity.HoursBreakdown{
			TotalHours:    report.TotalHours,
			NormalHours:   report.NormalHours,
			OvertimeHours: report.OvertimeHours,
		},
	}
	for _, day := range report.Days {
		sheet.rows = append(sheet.rows, service.TimesheetRow{Record: day.Record, Hours: day.Hours})
	}

	return employee, sheet, nil
}
