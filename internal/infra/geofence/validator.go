// Package geofence implements the punch geofence validation engine.
package geofence

import (
	"math"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
)

const (
	// earthRadiusMeters is the spherical-Earth radius used by the
	// haversine distance.
	earthRadiusMeters = 6371000.0

	// trustedAccuracyMeters is the accuracy at or below which the sensor
	// is trusted and the base radius is used unchanged.
	trustedAccuracyMeters = 50.0

	// emergencyRadiusCapMeters caps the adaptive radius for very poor
	// fixes so a low-quality reading cannot authorize an arbitrarily
	// distant claim.
	emergencyRadiusCapMeters = 500.0
)

type validator struct{}

// NewValidator creates a stateless geofence validator. It is safe for
// concurrent use.
func NewValidator() service.GeofenceValidator {
	return &validator{}
}

// Distance returns the great-circle distance between two coordinates in
// meters, using the haversine formula on a spherical-Earth model. All
// intermediate terms stay in double precision.
func (v *validator) Distance(a, b entity.Coordinate) float64 {
	latA := degToRad(a.Latitude)
	latB := degToRad(b.Latitude)
	dLat := degToRad(b.Latitude - a.Latitude)
	dLon := degToRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// AdaptiveRadius grows the base radius with the reported GPS accuracy so
// tight geofences do not reject honest punches on noisy sensors.
//
//	accuracy <= 50   -> base (sensor trusted)
//	51..100          -> base + accuracy
//	101..200         -> base + accuracy * 1.5
//	> 200            -> min(500, base + accuracy * 2)
func (v *validator) AdaptiveRadius(baseRadiusMeters, gpsAccuracyMeters float64) float64 {
	switch {
	case gpsAccuracyMeters <= trustedAccuracyMeters:
		return baseRadiusMeters
	case gpsAccuracyMeters <= 100:
		return baseRadiusMeters + gpsAccuracyMeters
	case gpsAccuracyMeters <= 200:
		return baseRadiusMeters + gpsAccuracyMeters*1.5
	default:
		return math.Min(emergencyRadiusCapMeters, baseRadiusMeters+gpsAccuracyMeters*2)
	}
}

// Validate checks the fix against the allowed locations in input order.
// The first active location whose distance is within its own adaptive
// radius authorizes the punch; matching is deliberately order-dependent,
// not nearest-wins. On failure the closest active location and its
// distance/radius are reported so the caller can explain the rejection.
func (v *validator) Validate(fix entity.PositionFix, locations []*entity.AllowedLocation) entity.ValidationResult {
	result := entity.ValidationResult{
		GPSAccuracyMeters: fix.AccuracyMeters,
	}

	closestDistance := math.MaxFloat64
	var closest *entity.AllowedLocation
	var closestRadius float64

	for _, location := range locations {
		if !location.Active {
			continue
		}

		distance := v.Distance(fix.Coordinate, location.Coordinate)
		adaptiveRadius := v.AdaptiveRadius(location.BaseRadiusMeters, fix.AccuracyMeters)

		// Track the closest location by raw distance for diagnostics,
		// regardless of the authorization outcome.
		if distance < closestDistance {
			closestDistance = distance
			closest = location
			closestRadius = adaptiveRadius
		}

		if distance <= adaptiveRadius {
			result.Authorized = true
			result.MatchedLocation = location
			result.DistanceMeters = distance
			result.AdaptiveRadiusMeters = adaptiveRadius

			return result
		}
	}

	// No active location authorized the fix. closest stays nil when the
	// active set was empty, which the workflow reports as a
	// configuration error rather than a rejection.
	result.MatchedLocation = closest
	if closest != nil {
		result.DistanceMeters = closestDistance
		result.AdaptiveRadiusMeters = closestRadius
	}

	return result
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
