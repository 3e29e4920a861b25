package export

import (
	"bytes"
	"testing"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportFixture() (*entity.Employee, time.Time, time.Time, []service.TimesheetRow, entity.HoursBreakdown) {
	employee := &entity.Employee{ID: uuid.New(), Name: "王小明", Email: "ming@example.com"}
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	rows := []service.TimesheetRow{
		{
			Record: &entity.DayPunchRecord{
				Date:       from,
				ClockIn:    &entity.PunchStamp{Time: "09:00", LocationName: "總公司"},
				LunchStart: &entity.PunchStamp{Time: "12:00"},
				LunchEnd:   &entity.PunchStamp{Time: "13:00"},
				ClockOut:   &entity.PunchStamp{Time: "18:00"},
			},
			Hours: entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		},
		{
			Record: &entity.DayPunchRecord{
				Date:    to,
				ClockIn: &entity.PunchStamp{Time: "09:30", LocationName: "台北倉庫"},
			},
			Hours: entity.HoursBreakdown{},
		},
	}
	totals := entity.HoursBreakdown{TotalHours: 8, NormalHours: 8}

	return employee, from, to, rows, totals
}

func TestTimesheetExporter_RenderXLSX(t *testing.T) {
	exporter := NewTimesheetExporter()
	employee, from, to, rows, totals := exportFixture()

	data, err := exporter.RenderXLSX(employee, from, to, rows, totals)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// Re-open the workbook and spot check the rendered cells.
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "王小明", name)

	clockIn, err := f.GetCellValue("days", "B2")
	require.NoError(t, err)
	assert.Equal(t, "09:00", clockIn)

	location, err := f.GetCellValue("days", "F3")
	require.NoError(t, err)
	assert.Equal(t, "台北倉庫", location)
}

func TestTimesheetExporter_RenderPDF(t *testing.T) {
	exporter := NewTimesheetExporter()
	employee, from, to, rows, totals := exportFixture()

	data, err := exporter.RenderPDF(employee, from, to, rows, totals)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PDF files begin with the %PDF marker.
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestTimesheetExporter_EmptyRange(t *testing.T) {
	exporter := NewTimesheetExporter()
	employee := &entity.Employee{ID: uuid.New(), Name: "王小明"}
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	xlsx, err := exporter.RenderXLSX(employee, day, day, nil, entity.HoursBreakdown{})
	require.NoError(t, err)
	assert.NotEmpty(t, xlsx)

	pdf, err := exporter.RenderPDF(employee, day, day, nil, entity.HoursBreakdown{})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
