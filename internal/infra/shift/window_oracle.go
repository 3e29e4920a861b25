// Package shift answers whether a punch moment falls inside the
// configured working-shift window.
package shift

import (
	"context"
	"time"

	"timeclock/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// windowOracle enforces a company-wide daily punch window. Schedules are
// owned by an external system; this oracle is the default collaborator
// when no per-employee schedule source is wired.
type windowOracle struct {
	startMinutes int
	endMinutes   int
}

// NewWindowOracle builds an oracle from "HH:MM" window bounds. A window
// whose end is at or before its start wraps past midnight.
func NewWindowOracle(start, end string) (service.ShiftWindowOracle, error) {
	startMinutes, err := minutesOfDay(start)
	if err != nil {
		return nil, errors.Wrap(err, "parse window start")
	}

	endMinutes, err := minutesOfDay(end)
	if err != nil {
		return nil, errors.Wrap(err, "parse window end")
	}

	return &windowOracle{
		startMinutes: startMinutes,
		endMinutes:   endMinutes,
	}, nil
}

// InsideWindow reports whether the moment's local time of day falls
// within [start, end). The employee ID is unused here; per-employee
// schedules come from a different oracle implementation.
func (o *windowOracle) InsideWindow(_ context.Context, _ uuid.UUID, at time.Time) (bool, error) {
	minutes := at.Hour()*60 + at.Minute()

	if o.startMinutes < o.endMinutes {
		return minutes >= o.startMinutes && minutes < o.endMinutes, nil
	}

	// Overnight window, e.g. 22:00-06:00.
	return minutes >= o.startMinutes || minutes < o.endMinutes, nil
}

func minutesOfDay(value string) (int, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	return parsed.Hour()*60 + parsed.Minute(), nil
}
