// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportedFix carries the GPS reading the client captured on its own
// device. When present it is preferred over the station sensor.
type ReportedFix struct {
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
	AccuracyMeters    float64 `json:"accuracy_meters"`
	CapturedAtEpochMs int64   `json:"captured_at_epoch_ms"`
}

// PunchInput defines the data accompanying a punch request. All fields
// are optional; the workflow decides the punch kind itself.
type PunchInput struct {
	// Reported is the client-captured fix, if the device has one.
	Reported *ReportedFix `json:"reported,omitempty"`

	// StationQR is scanned punch-station QR data. When present the punch
	// is validated against that station's location only.
	StationQR string `json:"station_qr,omitempty"`
}

// PunchOutput describes a completed punch.
type PunchOutput struct {
	Kind     entity.PunchKind        `json:"kind"`
	Record   *entity.DayPunchRecord  `json:"record"`
	Hours    entity.HoursBreakdown   `json:"hours"`
	Location *entity.AllowedLocation `json:"location"`

	DistanceMeters       float64 `json:"distance_meters"`
	AdaptiveRadiusMeters float64 `json:"adaptive_radius_meters"`
}

// DayStatusOutput describes the state of one employee-day.
type DayStatusOutput struct {
	Record *entity.DayPunchRecord `json:"record"`
	Hours  entity.HoursBreakdown  `json:"hours"`

	// NextKind is the next expected punch; empty when the day is complete.
	NextKind entity.PunchKind `json:"next_kind,omitempty"`
	Complete bool             `json:"complete"`
}

// PunchUsecase drives the punch workflow: cooldown, shift window,
// position acquisition, geofence validation, stamping and persistence.
type PunchUsecase interface {
	// Punch performs the next punch action for the employee.
	Punch(ctx context.Context, employeeID uuid.UUID, input *PunchInput) (*PunchOutput, error)

	// DayStatus reports the employee's punch record for today.
	DayStatus(ctx context.Context, employeeID uuid.UUID) (*DayStatusOutput, error)
}
