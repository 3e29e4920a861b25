// Package workhours computes the daily normal/overtime hour split from
// raw punch times.
package workhours

import (
	"strconv"
	"strings"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
)

const (
	// normalWorkdayMinutes is the threshold where overtime begins.
	normalWorkdayMinutes = 480

	// overageToleranceMinutes absorbs minor over-punches: up to this many
	// minutes past a full workday are clamped instead of counted as
	// overtime.
	overageToleranceMinutes = 15
)

type calculator struct{}

// NewCalculator creates a stateless hours calculator. Calculate is a
// pure function: identical inputs always produce identical output.
func NewCalculator() service.HoursCalculator {
	return &calculator{}
}

// Calculate converts four "HH:MM" punch times into an hour breakdown.
// A day is only complete with both bookends; a missing or unparsable
// clock-in or clock-out yields an all-zero breakdown rather than an
// error. The lunch pair is optional and silently ignored when absent,
// malformed, or out of order.
func (c *calculator) Calculate(clockIn, lunchStart, lunchEnd, clockOut string) entity.HoursBreakdown {
	inMinutes, okIn := parseClockTime(clockIn)
	outMinutes, okOut := parseClockTime(clockOut)
	if !okIn || !okOut {
		return entity.HoursBreakdown{}
	}

	lunchBreak := 0
	if start, ok := parseClockTime(lunchStart); ok {
		if end, ok := parseClockTime(lunchEnd); ok && end > start {
			lunchBreak = end - start
		}
	}

	// Overnight spans come out negative here and clamp to zero below;
	// wrapping past midnight is intentionally not interpreted.
	workedMinutes := (outMinutes - inMinutes) - lunchBreak

	if overage := workedMinutes - normalWorkdayMinutes; overage > 0 && overage <= overageToleranceMinutes {
		workedMinutes = normalWorkdayMinutes
	}

	if workedMinutes < 0 {
		workedMinutes = 0
	}

	totalHours := float64(workedMinutes) / 60

	breakdown := entity.HoursBreakdown{
		TotalHours:  totalHours,
		NormalHours: totalHours,
	}
	if workedMinutes > normalWorkdayMinutes {
		breakdown.NormalHours = float64(normalWorkdayMinutes) / 60
		breakdown.OvertimeHours = totalHours - breakdown.NormalHours
	}

	return breakdown
}

// FromRecord recomputes the breakdown from the record's four raw punch
// times. Stored totals are never read back in.
func (c *calculator) FromRecord(record *entity.DayPunchRecord) entity.HoursBreakdown {
	if record == nil {
		return entity.HoursBreakdown{}
	}

	return c.Calculate(
		record.TimeOf(entity.PunchClockIn),
		record.TimeOf(entity.PunchLunchStart),
		record.TimeOf(entity.PunchLunchEnd),
		record.TimeOf(entity.PunchClockOut),
	)
}

// parseClockTime parses an "HH:MM" time of day into minutes since
// midnight. The boolean reports whether the input was well-formed.
func parseClockTime(value string) (int, bool) {
	hourPart, minutePart, found := strings.Cut(value, ":")
	if !found {
		return 0, false
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(minutePart)
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour*60 + minute, true
}
