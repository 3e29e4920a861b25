// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a person who punches in and out of work.
type Employee struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the employee.
	Email        string    // Login email, unique.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash, never exposed through the API.
	Role         Role      // Authorization role.
	CreatedAt    time.Time // Timestamp of when this employee was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
