package service

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"

	"github.com/pkg/errors"
)

// Sensor-layer failures. They are retried by the acquirer up to its
// budget and surfaced verbatim only when no fix at all was obtained.
var (
	// ErrPermissionDenied is returned when the device refuses location access.
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrPositionUnavailable is returned when the sensor cannot produce a fix.
	ErrPositionUnavailable = errors.New("position unavailable")
	// ErrSensorTimeout is returned when the sensor did not answer in time.
	ErrSensorTimeout = errors.New("position request timed out")
)

// SensorOptions constrain a single position request.
type SensorOptions struct {
	HighAccuracy bool          // Request the high-accuracy positioning mode.
	Timeout      time.Duration // Bounded wait for the fix; never infinite.
	MaxCachedAge time.Duration // Accept a cached fix no older than this; zero forbids caching.
}

// PositionSensor exposes the single "get current position" operation of a
// positioning device. Implementations map device failures onto the typed
// sensor errors above.
type PositionSensor interface {
	// CurrentPosition obtains one fix under the given constraints.
	CurrentPosition(ctx context.Context, opts SensorOptions) (*entity.PositionFix, error)
}

// PositionAcquirer obtains a device position with acceptable quality,
// retrying under degraded conditions. Retries are sequential; callers
// must not issue overlapping acquisitions for the same punch action.
type PositionAcquirer interface {
	// Acquire polls the sensor with progressively looser constraints and
	// returns the best fix obtained. It fails only when every attempt
	// produced no fix at all.
	Acquire(ctx context.Context) (*entity.PositionFix, error)
}
