package geofence

import (
	"testing"

	"timeclock/internal/domain/entity"

	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	v := NewValidator()

	points := []entity.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 38.7223, Longitude: -9.1393},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: 179.9},
	}

	for _, p := range points {
		assert.Zero(t, v.Distance(p, p))
	}
}

func TestDistance_MatchesReferenceHaversine(t *testing.T) {
	v := NewValidator()

	pairs := []struct {
		name string
		a    entity.Coordinate
		b    entity.Coordinate
	}{
		{
			name: "across Lisbon",
			a:    entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
			b:    entity.Coordinate{Latitude: 38.7369, Longitude: -9.1427},
		},
		{
			name: "Lisbon to Porto",
			a:    entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
			b:    entity.Coordinate{Latitude: 41.1579, Longitude: -8.6291},
		},
		{
			name: "across the equator",
			a:    entity.Coordinate{Latitude: -1.0, Longitude: 30.0},
			b:    entity.Coordinate{Latitude: 1.0, Longitude: 30.5},
		},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Distance(tt.a, tt.b)
			// orb's haversine uses the WGS84 equatorial radius, ours the
			// mean spherical radius; they agree to well under 0.2%.
			want := geo.DistanceHaversine(tt.a.Point(), tt.b.Point())
			assert.InEpsilon(t, want, got, 0.002)
		})
	}
}

func TestDistance_ShortRangePrecision(t *testing.T) {
	v := NewValidator()

	// Roughly 111 m per 0.001 degree of latitude.
	a := entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393}
	b := entity.Coordinate{Latitude: 38.7233, Longitude: -9.1393}

	got := v.Distance(a, b)
	assert.InDelta(t, 111.2, got, 0.5)
}

func TestAdaptiveRadius(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name     string
		base     float64
		accuracy float64
		want     float64
	}{
		{name: "trusted sensor", base: 100, accuracy: 10, want: 100},
		{name: "trusted band upper edge", base: 100, accuracy: 50, want: 100},
		{name: "moderate noise adds accuracy", base: 100, accuracy: 80, want: 180},
		{name: "band edge 100", base: 100, accuracy: 100, want: 200},
		{name: "low quality adds 1.5x", base: 100, accuracy: 150, want: 325},
		{name: "band edge 200", base: 100, accuracy: 200, want: 400},
		{name: "very low quality capped", base: 100, accuracy: 300, want: 500},
		{name: "cap from spec scenario", base: 50, accuracy: 250, want: 500},
		{name: "cap never exceeded", base: 400, accuracy: 1000, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, v.AdaptiveRadius(tt.base, tt.accuracy), 1e-9)
		})
	}
}

func TestAdaptiveRadius_CapHoldsForAnyPoorAccuracy(t *testing.T) {
	v := NewValidator()

	for accuracy := 201.0; accuracy <= 2000; accuracy += 37 {
		got := v.AdaptiveRadius(50, accuracy)
		assert.LessOrEqual(t, got, 500.0, "accuracy %.0f", accuracy)
	}
}

func TestValidate_AuthorizedInsideRadius(t *testing.T) {
	v := NewValidator()

	office := &entity.AllowedLocation{
		Name:             "Head Office",
		Coordinate:       entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		BaseRadiusMeters: 100,
		Active:           true,
	}

	fix := entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.72235, Longitude: -9.13935},
		AccuracyMeters: 15,
	}

	result := v.Validate(fix, []*entity.AllowedLocation{office})
	require.True(t, result.Authorized)
	assert.Equal(t, office, result.MatchedLocation)
	assert.LessOrEqual(t, result.DistanceMeters, result.AdaptiveRadiusMeters)
	assert.Equal(t, 15.0, result.GPSAccuracyMeters)
}

func TestValidate_PoorAccuracyUsesEmergencyRadius(t *testing.T) {
	v := NewValidator()

	office := &entity.AllowedLocation{
		Name:             "Head Office",
		Coordinate:       entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		BaseRadiusMeters: 50,
		Active:           true,
	}

	// Same point, terrible accuracy: adaptive radius is min(500, 50+500).
	fix := entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		AccuracyMeters: 250,
	}

	result := v.Validate(fix, []*entity.AllowedLocation{office})
	require.True(t, result.Authorized)
	assert.InDelta(t, 500.0, result.AdaptiveRadiusMeters, 1e-9)
	assert.InDelta(t, 0.0, result.DistanceMeters, 1e-6)
}

func TestValidate_SkipsInactiveLocations(t *testing.T) {
	v := NewValidator()

	office := &entity.AllowedLocation{
		Name:             "Closed Site",
		Coordinate:       entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		BaseRadiusMeters: 100,
		Active:           false,
	}

	fix := entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		AccuracyMeters: 5,
	}

	result := v.Validate(fix, []*entity.AllowedLocation{office})
	assert.False(t, result.Authorized)
	assert.Nil(t, result.MatchedLocation)
}

func TestValidate_FirstMatchWinsOverNearest(t *testing.T) {
	v := NewValidator()

	// The first location is nominally closer but its small radius does
	// not cover the fix; the second is farther but its radius does.
	tight := &entity.AllowedLocation{
		Name:             "Tight Site",
		Coordinate:       entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		BaseRadiusMeters: 10,
		Active:           true,
	}
	wide := &entity.AllowedLocation{
		Name:             "Wide Site",
		Coordinate:       entity.Coordinate{Latitude: 38.7250, Longitude: -9.1393},
		BaseRadiusMeters: 400,
		Active:           true,
	}

	// ~110 m north of the tight site.
	fix := entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7233, Longitude: -9.1393},
		AccuracyMeters: 10,
	}

	result := v.Validate(fix, []*entity.AllowedLocation{tight, wide})
	require.True(t, result.Authorized)
	assert.Equal(t, wide, result.MatchedLocation)
}

func TestValidate_RejectionReportsClosestLocation(t *testing.T) {
	v := NewValidator()

	near := &entity.AllowedLocation{
		Name:             "Near Site",
		Coordinate:       entity.Coordinate{Latitude: 38.7233, Longitude: -9.1393},
		BaseRadiusMeters: 20,
		Active:           true,
	}
	far := &entity.AllowedLocation{
		Name:             "Far Site",
		Coordinate:       entity.Coordinate{Latitude: 38.7400, Longitude: -9.1393},
		BaseRadiusMeters: 20,
		Active:           true,
	}

	fix := entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		AccuracyMeters: 10,
	}

	result := v.Validate(fix, []*entity.AllowedLocation{far, near})
	require.False(t, result.Authorized)
	require.NotNil(t, result.MatchedLocation)
	assert.Equal(t, near, result.MatchedLocation)
	assert.Greater(t, result.DistanceMeters, result.AdaptiveRadiusMeters)
}

func TestValidate_EmptySet(t *testing.T) {
	v := NewValidator()

	fix := entity.PositionFix{
		Coordinate:     entity.Coordinate{Latitude: 38.7223, Longitude: -9.1393},
		AccuracyMeters: 10,
	}

	result := v.Validate(fix, nil)
	assert.False(t, result.Authorized)
	assert.Nil(t, result.MatchedLocation)
}
