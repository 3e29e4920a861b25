package shift

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestWindowOracle_DaytimeWindow(t *testing.T) {
	oracle, err := NewWindowOracle("07:00", "22:00")
	require.NoError(t, err)

	ctx := context.Background()
	employeeID := uuid.New()

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "before opening", at: at(6, 59), want: false},
		{name: "at opening", at: at(7, 0), want: true},
		{name: "midday", at: at(12, 30), want: true},
		{name: "last minute", at: at(21, 59), want: true},
		{name: "at closing", at: at(22, 0), want: false},
		{name: "late night", at: at(23, 45), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oracle.InsideWindow(ctx, employeeID, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowOracle_OvernightWindow(t *testing.T) {
	oracle, err := NewWindowOracle("22:00", "06:00")
	require.NoError(t, err)

	ctx := context.Background()
	employeeID := uuid.New()

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "evening before start", at: at(21, 30), want: false},
		{name: "at start", at: at(22, 0), want: true},
		{name: "past midnight", at: at(2, 15), want: true},
		{name: "at end", at: at(6, 0), want: false},
		{name: "morning", at: at(10, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := oracle.InsideWindow(ctx, employeeID, tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWindowOracle_RejectsMalformedBounds(t *testing.T) {
	_, err := NewWindowOracle("7am", "22:00")
	assert.Error(t, err)

	_, err = NewWindowOracle("07:00", "25:00")
	assert.Error(t, err)
}
