// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AllowedLocation is a geofenced site where employees are authorized to
// punch. The punch workflow treats the set of allowed locations as
// read-only configuration data.
type AllowedLocation struct {
	ID               uuid.UUID  // The Global Unique Identifier (GUID) for the location.
	Name             string     // A human-readable site name, e.g., "Head Office".
	FullAddress      string     // The full, human-readable street address.
	Coordinate       Coordinate // The geographic center of the geofence.
	BaseRadiusMeters float64    // Authorized radius before accuracy compensation, > 0.
	Active           bool       // Inactive locations are skipped during validation.
	CreatedAt        time.Time  // Timestamp of when this location was created.
	UpdatedAt        time.Time  // Timestamp of the last modification.
}
