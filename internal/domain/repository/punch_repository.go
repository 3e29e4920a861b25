// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPunchRecordNotFound is returned when a day punch record is not found.
var ErrPunchRecordNotFound = errors.New("punch record not found")

// PunchRepository is the persistence sink for day punch records. Hour
// totals are stored alongside the record for reporting but are always
// recomputed from the four raw punch times, never read back as input.
type PunchRepository interface {
	// FindRecord retrieves the punch record for one employee-day.
	FindRecord(ctx context.Context, employeeID uuid.UUID, date time.Time) (*entity.DayPunchRecord, error)

	// SaveRecord inserts or updates the punch record together with its
	// freshly computed hour breakdown.
	SaveRecord(ctx context.Context, record *entity.DayPunchRecord, hours entity.HoursBreakdown) error

	// ListRecordsByRange retrieves an employee's records between two dates
	// (inclusive), ordered by date.
	ListRecordsByRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]*entity.DayPunchRecord, error)
}
