// Package entity contains the core business objects of the project.
package entity

// ValidationResult is the verdict of a geofence validation. It is created
// fresh per validation call and is immutable.
//
// Invariant: Authorized == true implies DistanceMeters <= AdaptiveRadiusMeters
// and MatchedLocation != nil.
type ValidationResult struct {
	Authorized           bool             `json:"authorized"`
	MatchedLocation      *AllowedLocation `json:"matched_location,omitempty"` // The authorizing location, or the closest one on failure.
	DistanceMeters       float64          `json:"distance_meters"`
	AdaptiveRadiusMeters float64          `json:"adaptive_radius_meters"`
	GPSAccuracyMeters    float64          `json:"gps_accuracy_meters"`
}
