// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// Coordinate is a geographic point in decimal degrees. It is a value
// object and is never mutated after creation.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`  // Degrees, positive north.
	Longitude float64 `json:"longitude"` // Degrees, positive east.
}

// Point converts the coordinate to an orb.Point (lon/lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// PositionFix is a single positioning-sensor reading. It is consumed by
// the punch workflow once and is not persisted on its own.
type PositionFix struct {
	Coordinate
	AccuracyMeters float64 `json:"accuracy_meters"` // Reported 1-sigma accuracy, >= 0.
	CapturedAt     int64   `json:"captured_at"`     // Unix epoch milliseconds.
}

// FixQuality classifies a fix by its reported accuracy.
type FixQuality string

const (
	// QualityExcellent is accuracy of 10 m or better.
	QualityExcellent FixQuality = "excellent"
	// QualityVeryGood is accuracy between 11 and 30 m.
	QualityVeryGood FixQuality = "very_good"
	// QualityGood is accuracy between 31 and 50 m.
	QualityGood FixQuality = "good"
	// QualityAcceptable is accuracy between 51 and 100 m.
	QualityAcceptable FixQuality = "acceptable"
	// QualityLow is accuracy between 101 and 200 m.
	QualityLow FixQuality = "low"
	// QualityVeryLow is accuracy worse than 200 m. Fixes in this band are
	// rejected by the acquirer while retry budget remains.
	QualityVeryLow FixQuality = "very_low"
)

// String returns the string representation of the FixQuality.
func (q FixQuality) String() string {
	return string(q)
}

// Quality returns the quality band for the fix's reported accuracy.
func (f PositionFix) Quality() FixQuality {
	switch accuracy := f.AccuracyMeters; {
	case accuracy <= 10:
		return QualityExcellent
	case accuracy <= 30:
		return QualityVeryGood
	case accuracy <= 50:
		return QualityGood
	case accuracy <= 100:
		return QualityAcceptable
	case accuracy <= 200:
		return QualityLow
	default:
		return QualityVeryLow
	}
}

// Acceptable reports whether the fix quality is good enough to validate a
// punch against. Only the very-low band is unacceptable.
func (f PositionFix) Acceptable() bool {
	return f.Quality() != QualityVeryLow
}
