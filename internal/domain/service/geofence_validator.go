package service

import (
	"timeclock/internal/domain/entity"
)

// GeofenceValidator decides whether a position fix authorizes a punch
// against a set of allowed locations. Implementations are pure and
// stateless; they are safe to call concurrently.
type GeofenceValidator interface {
	// Distance returns the great-circle distance between two coordinates
	// in meters.
	Distance(a, b entity.Coordinate) float64

	// AdaptiveRadius returns the geofence radius enlarged according to the
	// reported GPS accuracy, to reduce false rejections on noisy fixes.
	AdaptiveRadius(baseRadiusMeters, gpsAccuracyMeters float64) float64

	// Validate checks the fix against the locations in input order and
	// returns the verdict. The first location whose distance is within its
	// own adaptive radius wins; on failure the closest location is
	// reported for diagnostics.
	Validate(fix entity.PositionFix, locations []*entity.AllowedLocation) entity.ValidationResult
}
