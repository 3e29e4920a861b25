// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"timeclock/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when an allowed location is not found.
var ErrLocationNotFound = errors.New("allowed location not found")

// LocationRepository defines the interface for allowed-location database operations.
type LocationRepository interface {
	// CreateLocation persists a new allowed location.
	CreateLocation(ctx context.Context, location *entity.AllowedLocation) error

	// FindLocationByID retrieves an allowed location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.AllowedLocation, error)

	// ListLocations retrieves all allowed locations ordered by creation time.
	ListLocations(ctx context.Context) ([]*entity.AllowedLocation, error)

	// ListActiveLocations retrieves only the active allowed locations.
	ListActiveLocations(ctx context.Context) ([]*entity.AllowedLocation, error)

	// UpdateLocation updates an existing allowed location.
	UpdateLocation(ctx context.Context, location *entity.AllowedLocation) error

	// DeleteLocation removes an allowed location by its ID.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
