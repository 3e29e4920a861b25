package impl

import (
	"context"
	"testing"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	mockRepo "timeclock/internal/mocks/repository"
	mockService "timeclock/internal/mocks/service"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type timesheetServiceMocks struct {
	punchRepo    *mockRepo.MockPunchRepository
	employeeRepo *mockRepo.MockEmployeeRepository
	hours        *mockService.MockHoursCalculator
	exporter     *mockService.MockTimesheetExporter
}

func newTimesheetService(t *testing.T) (usecase.TimesheetUsecase, timesheetServiceMocks) {
	t.Helper()

	m := timesheetServiceMocks{
		punchRepo:    mockRepo.NewMockPunchRepository(t),
		employeeRepo: mockRepo.NewMockEmployeeRepository(t),
		hours:        mockService.NewMockHoursCalculator(t),
		exporter:     mockService.NewMockTimesheetExporter(t),
	}

	svc := NewTimesheetService(m.punchRepo, m.employeeRepo, m.hours, m.exporter)

	return svc, m
}

func fullDayRecord(employeeID uuid.UUID, date time.Time) *entity.DayPunchRecord {
	return &entity.DayPunchRecord{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		ClockIn:    &entity.PunchStamp{Time: "09:00"},
		LunchStart: &entity.PunchStamp{Time: "12:00"},
		LunchEnd:   &entity.PunchStamp{Time: "13:00"},
		ClockOut:   &entity.PunchStamp{Time: "18:00"},
	}
}

func TestTimesheetService_Timesheet_SumsRecomputedHours(t *testing.T) {
	svc, m := newTimesheetService(t)

	employeeID := uuid.New()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	day1 := fullDayRecord(employeeID, from)
	day2 := fullDayRecord(employeeID, to)

	m.punchRepo.EXPECT().
		ListRecordsByRange(mock.Anything, employeeID, from, to).
		Return([]*entity.DayPunchRecord{day1, day2}, nil)
	m.hours.EXPECT().FromRecord(day1).
		Return(entity.HoursBreakdown{TotalHours: 8, NormalHours: 8})
	m.hours.EXPECT().FromRecord(day2).
		Return(entity.HoursBreakdown{TotalHours: 9, NormalHours: 8, OvertimeHours: 1})

	out, err := svc.Timesheet(context.Background(), employeeID, from, to)
	require.NoError(t, err)
	assert.Len(t, out.Days, 2)
	assert.Equal(t, 17.0, out.TotalHours)
	assert.Equal(t, 16.0, out.NormalHours)
	assert.Equal(t, 1.0, out.OvertimeHours)
}

func TestTimesheetService_Timesheet_InvalidRange(t *testing.T) {
	svc, _ := newTimesheetService(t)

	from := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := svc.Timesheet(context.Background(), uuid.New(), from, to)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestTimesheetService_Timesheet_EmptyRange(t *testing.T) {
	svc, m := newTimesheetService(t)

	employeeID := uuid.New()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from

	m.punchRepo.EXPECT().
		ListRecordsByRange(mock.Anything, employeeID, from, to).
		Return(nil, nil)

	out, err := svc.Timesheet(context.Background(), employeeID, from, to)
	require.NoError(t, err)
	assert.Empty(t, out.Days)
	assert.Zero(t, out.TotalHours)
}

func TestTimesheetService_ExportXLSX(t *testing.T) {
	svc, m := newTimesheetService(t)

	employee := &entity.Employee{ID: uuid.New(), Name: "王小明"}
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	record := fullDayRecord(employee.ID, from)
	workbook := []byte("PK workbook")

	m.employeeRepo.EXPECT().FindEmployeeByID(mock.Anything, employee.ID).Return(employee, nil)
	m.punchRepo.EXPECT().
		ListRecordsByRange(mock.Anything, employee.ID, from, to).
		Return([]*entity.DayPunchRecord{record}, nil)
	m.hours.EXPECT().FromRecord(record).
		Return(entity.HoursBreakdown{TotalHours: 8, NormalHours: 8})
	m.exporter.EXPECT().
		RenderXLSX(employee, from, to,
			[]service.TimesheetRow{{Record: record, Hours: entity.HoursBreakdown{TotalHours: 8, NormalHours: 8}}},
			entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		).
		Return(workbook, nil)

	data, err := svc.ExportXLSX(context.Background(), employee.ID, from, to)
	require.NoError(t, err)
	assert.Equal(t, workbook, data)
}

func TestTimesheetService_ExportPDF(t *testing.T) {
	svc, m := newTimesheetService(t)

	employee := &entity.Employee{ID: uuid.New(), Name: "王小明"}
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	record := fullDayRecord(employee.ID, from)
	document := []byte("%PDF-1.4")

	m.employeeRepo.EXPECT().FindEmployeeByID(mock.Anything, employee.ID).Return(employee, nil)
	m.punchRepo.EXPECT().
		ListRecordsByRange(mock.Anything, employee.ID, from, to).
		Return([]*entity.DayPunchRecord{record}, nil)
	m.hours.EXPECT().FromRecord(record).
		Return(entity.HoursBreakdown{TotalHours: 8, NormalHours: 8})
	m.exporter.EXPECT().
		RenderPDF(employee, from, to, mock.Anything, mock.Anything).
		Return(document, nil)

	data, err := svc.ExportPDF(context.Background(), employee.ID, from, to)
	require.NoError(t, err)
	assert.Equal(t, document, data)
}
