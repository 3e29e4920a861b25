package sensor

import (
	"context"
	"testing"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	mockService "timeclock/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(t *testing.T) (func(ctx context.Context, d time.Duration) error, *[]time.Duration) {
	t.Helper()

	var slept []time.Duration

	return func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)

		return nil
	}, &slept
}

func TestAcquire_FirstAttemptAcceptable(t *testing.T) {
	mockSensor := mockService.NewMockPositionSensor(t)
	sleep, slept := noSleep(t)
	acq := NewAcquirer(mockSensor, WithSleeper(sleep))

	ctx := context.Background()
	fix := &entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		AccuracyMeters: 8,
	}

	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 30 * time.Second}).
		Return(fix, nil)

	got, err := acq.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, fix, got)
	assert.Empty(t, *slept)
}

func TestAcquire_RetriesWithLoosenedConstraints(t *testing.T) {
	mockSensor := mockService.NewMockPositionSensor(t)
	sleep, slept := noSleep(t)
	acq := NewAcquirer(mockSensor, WithSleeper(sleep))

	ctx := context.Background()
	fix := &entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		AccuracyMeters: 42,
	}

	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 30 * time.Second}).
		Return(nil, service.ErrSensorTimeout)
	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 20 * time.Second, MaxCachedAge: 5 * time.Second}).
		Return(nil, service.ErrSensorTimeout)
	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: false, Timeout: 15 * time.Second, MaxCachedAge: 10 * time.Second}).
		Return(fix, nil)

	got, err := acq.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, fix, got)
	assert.Equal(t, []time.Duration{retryBackoff, retryBackoff}, *slept)
}

func TestAcquire_UnacceptableFixDiscardedThenAccepted(t *testing.T) {
	mockSensor := mockService.NewMockPositionSensor(t)
	sleep, _ := noSleep(t)
	acq := NewAcquirer(mockSensor, WithSleeper(sleep))

	ctx := context.Background()
	noisy := &entity.PositionFix{AccuracyMeters: 350}
	good := &entity.PositionFix{AccuracyMeters: 25}

	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 30 * time.Second}).
		Return(noisy, nil)
	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 20 * time.Second, MaxCachedAge: 5 * time.Second}).
		Return(good, nil)

	got, err := acq.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, good, got)
}

func TestAcquire_RetriesExhaustedReturnsBestFix(t *testing.T) {
	mockSensor := mockService.NewMockPositionSensor(t)
	sleep, _ := noSleep(t)
	acq := NewAcquirer(mockSensor, WithSleeper(sleep))

	ctx := context.Background()
	worse := &entity.PositionFix{AccuracyMeters: 800}
	better := &entity.PositionFix{AccuracyMeters: 300}

	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 30 * time.Second}).
		Return(worse, nil)
	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 20 * time.Second, MaxCachedAge: 5 * time.Second}).
		Return(better, nil)
	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: false, Timeout: 15 * time.Second, MaxCachedAge: 10 * time.Second}).
		Return(nil, service.ErrSensorTimeout)

	// Never blocks the punch: the best fix seen is returned even though
	// its quality band is unacceptable.
	got, err := acq.Acquire(ctx)
	require.NoError(t, err)
	assert.Equal(t, better, got)
}

func TestAcquire_AllAttemptsFail(t *testing.T) {
	tests := []struct {
		name      string
		sensorErr error
	}{
		{name: "permission denied", sensorErr: service.ErrPermissionDenied},
		{name: "position unavailable", sensorErr: service.ErrPositionUnavailable},
		{name: "timeout", sensorErr: service.ErrSensorTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSensor := mockService.NewMockPositionSensor(t)
			sleep, _ := noSleep(t)
			acq := NewAcquirer(mockSensor, WithSleeper(sleep))

			ctx := context.Background()
			for _, opts := range attemptPlan {
				mockSensor.EXPECT().
					CurrentPosition(ctx, opts).
					Return(nil, tt.sensorErr)
			}

			got, err := acq.Acquire(ctx)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.sensorErr)
		})
	}
}

func TestAcquire_ContextCanceledDuringBackoff(t *testing.T) {
	mockSensor := mockService.NewMockPositionSensor(t)
	acq := NewAcquirer(mockSensor, WithSleeper(func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}))

	ctx := context.Background()
	mockSensor.EXPECT().
		CurrentPosition(ctx, service.SensorOptions{HighAccuracy: true, Timeout: 30 * time.Second}).
		Return(nil, service.ErrPositionUnavailable)

	got, err := acq.Acquire(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
}

func TestAcquire_NilFixWithoutError(t *testing.T) {
	mockSensor := mockService.NewMockPositionSensor(t)
	sleep, _ := noSleep(t)
	acq := NewAcquirer(mockSensor, WithSleeper(sleep))

	ctx := context.Background()
	for _, opts := range attemptPlan {
		mockSensor.EXPECT().
			CurrentPosition(ctx, opts).
			Return(nil, nil)
	}

	got, err := acq.Acquire(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
}
