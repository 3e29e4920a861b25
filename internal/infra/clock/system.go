// Package clock provides the wall-clock source injected into the punch
// workflow.
package clock

import (
	"time"

	"timeclock/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by the real wall clock.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
