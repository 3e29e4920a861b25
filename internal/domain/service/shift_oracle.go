package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ShiftWindowOracle answers whether a moment falls inside an employee's
// permitted punch window. The shift schedule itself is owned by an
// external collaborator; the punch workflow only consumes the verdict.
type ShiftWindowOracle interface {
	// InsideWindow reports whether the employee may punch at the given time.
	InsideWindow(ctx context.Context, employeeID uuid.UUID, at time.Time) (bool, error)
}
