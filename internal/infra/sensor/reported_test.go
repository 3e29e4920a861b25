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

func TestReportedSensor_FreshReading(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mockClock := mockService.NewMockClock(t)
	mockClock.EXPECT().Now().Return(now)

	fix := &entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 25.0330, Longitude: 121.5654},
		AccuracyMeters: 12,
		CapturedAt:     now.Add(-2 * time.Second).UnixMilli(),
	}
	s := NewReportedSensor(fix, mockClock)

	got, err := s.CurrentPosition(context.Background(), service.SensorOptions{HighAccuracy: true, Timeout: 30 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, fix, got)
}

func TestReportedSensor_StaleForNoCacheAttempt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mockClock := mockService.NewMockClock(t)
	mockClock.EXPECT().Now().Return(now)

	fix := &entity.PositionFix{
		CapturedAt: now.Add(-8 * time.Second).UnixMilli(),
	}
	s := NewReportedSensor(fix, mockClock)

	_, err := s.CurrentPosition(context.Background(), service.SensorOptions{MaxCachedAge: 0})
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
}

func TestReportedSensor_StaleReadingAcceptedByLooserAttempt(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	mockClock := mockService.NewMockClock(t)
	mockClock.EXPECT().Now().Return(now)

	fix := &entity.PositionFix{
		CapturedAt: now.Add(-8 * time.Second).UnixMilli(),
	}
	s := NewReportedSensor(fix, mockClock)

	got, err := s.CurrentPosition(context.Background(), service.SensorOptions{MaxCachedAge: 10 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, fix, got)
}

func TestReportedSensor_NoReading(t *testing.T) {
	mockClock := mockService.NewMockClock(t)
	s := NewReportedSensor(nil, mockClock)

	_, err := s.CurrentPosition(context.Background(), service.SensorOptions{})
	assert.ErrorIs(t, err, service.ErrPositionUnavailable)
}
