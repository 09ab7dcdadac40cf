package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKM(t *testing.T) {
	adelaide := Coord{Lat: -34.9211, Lon: 138.5958}
	glenelg := Coord{Lat: -34.9807, Lon: 138.512}

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKM(adelaide, glenelg), DistanceKM(glenelg, adelaide), 1e-6)
	})

	t.Run("zero for identical points", func(t *testing.T) {
		assert.Zero(t, DistanceKM(adelaide, adelaide))
	})

	t.Run("known city-scale distance", func(t *testing.T) {
		// Adelaide station to Glenelg is roughly 10 km.
		d := DistanceKM(adelaide, glenelg)
		assert.Greater(t, d, 8.0)
		assert.Less(t, d, 12.0)
	})
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coord
		expected float64
	}{
		{name: "due north", from: Coord{Lat: -35.0, Lon: 138.6}, to: Coord{Lat: -34.0, Lon: 138.6}, expected: 0},
		{name: "due south", from: Coord{Lat: -34.0, Lon: 138.6}, to: Coord{Lat: -35.0, Lon: 138.6}, expected: 180},
		{name: "roughly east", from: Coord{Lat: -34.9, Lon: 138.5}, to: Coord{Lat: -34.9, Lon: 138.7}, expected: 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Bearing(tt.from, tt.to), 0.5)
		})
	}
}

func TestBearingRange(t *testing.T) {
	pts := []Coord{
		{Lat: -34.9, Lon: 138.6},
		{Lat: -35.1, Lon: 138.4},
		{Lat: -34.6, Lon: 138.8},
		{Lat: -34.9211, Lon: 138.5958},
	}
	for _, a := range pts {
		for _, b := range pts {
			if a == b {
				continue
			}
			brg := Bearing(a, b)
			assert.GreaterOrEqual(t, brg, 0.0)
			assert.Less(t, brg, 360.0)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	adelaide := Bounds{MinLat: -35.25, MaxLat: -34.55, MinLon: 138.40, MaxLon: 138.80}

	tests := []struct {
		name string
		c    Coord
		in   bool
	}{
		{name: "city centre", c: Coord{Lat: -34.9211, Lon: 138.5958}, in: true},
		{name: "on southern border", c: Coord{Lat: -35.25, Lon: 138.6}, in: true},
		{name: "north of Gawler", c: Coord{Lat: -34.2, Lon: 138.6}, in: false},
		{name: "out to sea", c: Coord{Lat: -34.9, Lon: 137.0}, in: false},
		{name: "melbourne", c: Coord{Lat: -37.81, Lon: 144.96}, in: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, adelaide.Contains(tt.c))
		})
	}
}
