package workhours

import (
	"testing"

	"timeclock/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	c := NewCalculator()

	tests := []struct {
		name       string
		clockIn    string
		lunchStart string
		lunchEnd   string
		clockOut   string
		want       entity.HoursBreakdown
	}{
		{
			name:       "standard day with lunch",
			clockIn:    "09:00",
			lunchStart: "12:00",
			lunchEnd:   "13:00",
			clockOut:   "17:00",
			want:       entity.HoursBreakdown{TotalHours: 7, NormalHours: 7},
		},
		{
			name:       "small overage absorbed by tolerance",
			clockIn:    "08:00",
			lunchStart: "12:00",
			lunchEnd:   "13:00",
			clockOut:   "17:10",
			want:       entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		},
		{
			name:       "overage at tolerance boundary",
			clockIn:    "08:00",
			lunchStart: "12:00",
			lunchEnd:   "13:00",
			clockOut:   "17:15",
			want:       entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		},
		{
			name:       "one minute past tolerance counts fully",
			clockIn:    "08:00",
			lunchStart: "12:00",
			lunchEnd:   "13:00",
			clockOut:   "17:16",
			want:       entity.HoursBreakdown{TotalHours: 8.266666666666667, NormalHours: 8, OvertimeHours: 0.26666666666666666},
		},
		{
			name:       "full hour of overtime",
			clockIn:    "08:00",
			lunchStart: "12:00",
			lunchEnd:   "13:00",
			clockOut:   "18:00",
			want:       entity.HoursBreakdown{TotalHours: 9, NormalHours: 8, OvertimeHours: 1},
		},
		{
			name:     "no lunch recorded",
			clockIn:  "09:00",
			clockOut: "17:00",
			want:     entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		},
		{
			name:       "inverted lunch pair ignored",
			clockIn:    "09:00",
			lunchStart: "13:00",
			lunchEnd:   "12:00",
			clockOut:   "17:00",
			want:       entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		},
		{
			name:       "only lunch start ignored",
			clockIn:    "09:00",
			lunchStart: "12:00",
			clockOut:   "17:00",
			want:       entity.HoursBreakdown{TotalHours: 8, NormalHours: 8},
		},
		{
			name:     "missing clock in yields zeros",
			clockOut: "17:00",
			want:     entity.HoursBreakdown{},
		},
		{
			name:    "missing clock out yields zeros",
			clockIn: "09:00",
			want:    entity.HoursBreakdown{},
		},
		{
			name:     "malformed clock in yields zeros",
			clockIn:  "9am",
			clockOut: "17:00",
			want:     entity.HoursBreakdown{},
		},
		{
			name:     "overnight span clamps to zero",
			clockIn:  "22:00",
			clockOut: "06:00",
			want:     entity.HoursBreakdown{},
		},
		{
			name:       "lunch longer than span clamps to zero",
			clockIn:    "09:00",
			lunchStart: "09:10",
			lunchEnd:   "18:00",
			clockOut:   "10:00",
			want:       entity.HoursBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Calculate(tt.clockIn, tt.lunchStart, tt.lunchEnd, tt.clockOut)
			assert.InDelta(t, tt.want.TotalHours, got.TotalHours, 1e-9)
			assert.InDelta(t, tt.want.NormalHours, got.NormalHours, 1e-9)
			assert.InDelta(t, tt.want.OvertimeHours, got.OvertimeHours, 1e-9)
			assert.InDelta(t, got.TotalHours, got.NormalHours+got.OvertimeHours, 1e-9)
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	c := NewCalculator()

	first := c.Calculate("08:30", "12:00", "12:45", "18:20")
	second := c.Calculate("08:30", "12:00", "12:45", "18:20")
	assert.Equal(t, first, second)
}

func TestFromRecord(t *testing.T) {
	c := NewCalculator()

	record := &entity.DayPunchRecord{
		ClockIn:    &entity.PunchStamp{Time: "09:00"},
		LunchStart: &entity.PunchStamp{Time: "12:00"},
		LunchEnd:   &entity.PunchStamp{Time: "13:00"},
		ClockOut:   &entity.PunchStamp{Time: "18:00"},
	}

	got := c.FromRecord(record)
	assert.InDelta(t, 8.0, got.TotalHours, 1e-9)
	assert.InDelta(t, 8.0, got.NormalHours, 1e-9)
	assert.Zero(t, got.OvertimeHours)
}

func TestFromRecord_PartialDay(t *testing.T) {
	c := NewCalculator()

	record := &entity.DayPunchRecord{
		ClockIn: &entity.PunchStamp{Time: "09:00"},
	}

	assert.Equal(t, entity.HoursBreakdown{}, c.FromRecord(record))
	assert.Equal(t, entity.HoursBreakdown{}, c.FromRecord(nil))
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{input: "00:00", want: 0, ok: true},
		{input: "09:05", want: 545, ok: true},
		{input: "23:59", want: 1439, ok: true},
		{input: "24:00", ok: false},
		{input: "12:60", ok: false},
		{input: "-1:30", ok: false},
		{input: "1230", ok: false},
		{input: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := parseClockTime(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.input)
		}
	}
}
