// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PunchKind identifies one of the four ordered punch actions in a workday.
type PunchKind string

const (
	// PunchClockIn is the first punch of the day.
	PunchClockIn PunchKind = "clock_in"
	// PunchLunchStart begins the lunch break.
	PunchLunchStart PunchKind = "lunch_start"
	// PunchLunchEnd ends the lunch break.
	PunchLunchEnd PunchKind = "lunch_end"
	// PunchClockOut is the last punch of the day.
	PunchClockOut PunchKind = "clock_out"
)

// String returns the string representation of the PunchKind.
func (k PunchKind) String() string {
	return string(k)
}

// punchOrder is the fixed sequence punches must follow within a day.
var punchOrder = []PunchKind{PunchClockIn, PunchLunchStart, PunchLunchEnd, PunchClockOut}

// PunchStamp is one recorded punch: the wall-clock time of day plus the
// location metadata of the fix that authorized it.
type PunchStamp struct {
	Time           string  `json:"time"` // "HH:MM", local time of day.
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	AccuracyMeters float64 `json:"accuracy_meters"`
	LocationName   string  `json:"location_name"` // Name of the allowed location that matched.
}

// DayPunchRecord holds the four punches of one employee-day. Fields are
// set one at a time as punches occur; a record with both bookends present
// is a complete day.
type DayPunchRecord struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the record.
	EmployeeID uuid.UUID   // The employee this day belongs to.
	Date       time.Time   // The calendar day, truncated to midnight.
	ClockIn    *PunchStamp // First punch, nil until performed.
	LunchStart *PunchStamp
	LunchEnd   *PunchStamp
	ClockOut   *PunchStamp
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Stamp returns the recorded stamp for a given punch kind, or nil.
func (r *DayPunchRecord) Stamp(kind PunchKind) *PunchStamp {
	switch kind {
	case PunchClockIn:
		return r.ClockIn
	case PunchLunchStart:
		return r.LunchStart
	case PunchLunchEnd:
		return r.LunchEnd
	case PunchClockOut:
		return r.ClockOut
	default:
		return nil
	}
}

// SetStamp records a stamp for a given punch kind.
func (r *DayPunchRecord) SetStamp(kind PunchKind, stamp *PunchStamp) {
	switch kind {
	case PunchClockIn:
		r.ClockIn = stamp
	case PunchLunchStart:
		r.LunchStart = stamp
	case PunchLunchEnd:
		r.LunchEnd = stamp
	case PunchClockOut:
		r.ClockOut = stamp
	}
}

// NextPunch returns the first punch kind not yet recorded, in the fixed
// clock_in -> lunch_start -> lunch_end -> clock_out order. ok is false
// once all four punches are set and the day is complete.
func (r *DayPunchRecord) NextPunch() (kind PunchKind, ok bool) {
	for _, k := range punchOrder {
		if r.Stamp(k) == nil {
			return k, true
		}
	}

	return "", false
}

// TimeOf returns the "HH:MM" time for a punch kind, or the empty string
// when the punch has not been performed.
func (r *DayPunchRecord) TimeOf(kind PunchKind) string {
	if stamp := r.Stamp(kind); stamp != nil {
		return stamp.Time
	}

	return ""
}
