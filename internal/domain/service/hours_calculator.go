package service

import (
	"timeclock/internal/domain/entity"
)

// HoursCalculator converts the four punch times of a day into a
// normal/overtime hour split. Implementations are pure and stateless.
type HoursCalculator interface {
	// Calculate derives the hour breakdown from "HH:MM" punch times.
	// Missing clock-in or clock-out yields an all-zero breakdown; a
	// missing or malformed lunch pair is ignored rather than treated as
	// an error.
	Calculate(clockIn, lunchStart, lunchEnd, clockOut string) entity.HoursBreakdown

	// FromRecord derives the breakdown from a day punch record.
	FromRecord(record *entity.DayPunchRecord) entity.HoursBreakdown
}
