package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"Seconds only", 45 * time.Second, "45s"},
		{"Minutes and seconds", 5*time.Minute + 10*time.Second, "5m10s"},
		{"Hours and minutes", time.Hour + 30*time.Minute, "1h30m"},
		{"Rounds sub-second", 45*time.Second + 400*time.Millisecond, "45s"},
		{"Zero", 0, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.duration))
		})
	}
}

func TestHoursToDuration(t *testing.T) {
	assert.Equal(t, 7*time.Hour+30*time.Minute, HoursToDuration(7.5))
	assert.Equal(t, time.Duration(0), HoursToDuration(0))
}
