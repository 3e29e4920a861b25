package sensor

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
)

// liveReadingWindow is how recent a client-reported reading must be to
// satisfy a request that forbids cached fixes. Network transit and
// request handling make a truly live reading impossible, so a small
// window stands in for "fresh".
const liveReadingWindow = 5 * time.Second

// reportedSensor adapts a single client-reported GPS reading to the
// PositionSensor interface, so punches carrying their own fix flow
// through the same acquisition path as station-sensor punches.
type reportedSensor struct {
	fix   *entity.PositionFix
	clock service.Clock
}

// NewReportedSensor wraps one client-reported reading. The reading is
// reusable across the acquirer's attempts; staleness is judged per
// request against the attempt's cache allowance.
func NewReportedSensor(fix *entity.PositionFix, clock service.Clock) service.PositionSensor {
	return &reportedSensor{fix: fix, clock: clock}
}

func (s *reportedSensor) CurrentPosition(_ context.Context, opts service.SensorOptions) (*entity.PositionFix, error) {
	if s.fix == nil {
		return nil, service.ErrPositionUnavailable
	}

	allowedAge := opts.MaxCachedAge
	if allowedAge < liveReadingWindow {
		allowedAge = liveReadingWindow
	}

	capturedAt := time.UnixMilli(s.fix.CapturedAt)
	if s.clock.Now().Sub(capturedAt) > allowedAge {
		return nil, service.ErrPositionUnavailable
	}

	return s.fix, nil
}
