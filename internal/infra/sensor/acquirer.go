// Package sensor implements position acquisition over a device
// positioning sensor, with retry under degraded conditions.
package sensor

import (
	"context"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	"timeclock/internal/errors"
	"timeclock/internal/infra/metrics"
)

// retryBackoff is the pause between acquisition attempts.
const retryBackoff = 2 * time.Second

// attemptPlan lists the sensor constraints per attempt, loosening as the
// earlier attempts fail or return unusable fixes.
var attemptPlan = []service.SensorOptions{
	{HighAccuracy: true, Timeout: 30 * time.Second, MaxCachedAge: 0},
	{HighAccuracy: true, Timeout: 20 * time.Second, MaxCachedAge: 5 * time.Second},
	{HighAccuracy: false, Timeout: 15 * time.Second, MaxCachedAge: 10 * time.Second},
}

type acquirer struct {
	sensor service.PositionSensor
	sleep  func(ctx context.Context, d time.Duration) error
}

// Option customizes the acquirer.
type Option func(*acquirer)

// WithSleeper replaces the inter-attempt wait, letting tests run without
// real wall-clock delays.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(a *acquirer) {
		a.sleep = sleep
	}
}

// NewAcquirer wraps a positioning sensor with the retry policy.
func NewAcquirer(positionSensor service.PositionSensor, opts ...Option) service.PositionAcquirer {
	a := &acquirer{
		sensor: positionSensor,
		sleep:  sleepContext,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Acquire runs the bounded attempt plan. An acceptable fix returns
// immediately; an unacceptable one is kept as a fallback candidate and
// retried. When the plan is exhausted the best fix seen so far is
// returned anyway, so the caller never blocks indefinitely. Only when
// every attempt produced no fix at all is the last sensor error
// surfaced.
func (a *acquirer) Acquire(ctx context.Context) (*entity.PositionFix, error) {
	var best *entity.PositionFix
	var lastErr error

	for attempt, opts := range attemptPlan {
		if attempt > 0 {
			if err := a.sleep(ctx, retryBackoff); err != nil {
				break
			}
		}

		fix, err := a.sensor.CurrentPosition(ctx, opts)
		if err != nil {
			metrics.IncSensorAttempt(metrics.ResultError)
			lastErr = err

			continue
		}
		if fix == nil {
			metrics.IncSensorAttempt(metrics.ResultError)
			lastErr = service.ErrPositionUnavailable

			continue
		}

		metrics.IncSensorAttempt(metrics.ResultSuccess)

		if fix.Acceptable() {
			return fix, nil
		}

		// Unusable quality: keep the best fallback and loosen constraints.
		if best == nil || fix.AccuracyMeters < best.AccuracyMeters {
			best = fix
		}
	}

	if best != nil {
		return best, nil
	}

	if lastErr == nil {
		lastErr = service.ErrPositionUnavailable
	}

	return nil, errors.Wrap(lastErr, "acquire position")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
