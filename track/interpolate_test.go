package track

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"metrotracker/geo"
)

func TestInterpolate(t *testing.T) {
	line := []geo.Coord{
		{Lat: -34.90, Lon: 138.50},
		{Lat: -34.90, Lon: 138.60},
		{Lat: -34.90, Lon: 138.70},
	}

	tests := []struct {
		name      string
		waypoints []geo.Coord
		progress  float64
		want      geo.Coord
	}{
		{"empty polyline falls back to city", nil, 0.5, fallbackPosition},
		{"single point", line[:1], 0.9, line[0]},
		{"start", line, 0, line[0]},
		{"end", line, 1, line[2]},
		{"midpoint", line, 0.5, geo.Coord{Lat: -34.90, Lon: 138.60}},
		{"quarter along first segment", line, 0.25, geo.Coord{Lat: -34.90, Lon: 138.55}},
		{"progress past end clamps", line, 1.5, line[2]},
		{"zero-length polyline", []geo.Coord{{Lat: -34.9, Lon: 138.6}, {Lat: -34.9, Lon: 138.6}}, 0.7, geo.Coord{Lat: -34.9, Lon: 138.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.waypoints, tt.progress)
			assert.InDelta(t, tt.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lon, got.Lon, 1e-9)
		})
	}
}

func TestInterpolateStaysOnSegmentEnvelope(t *testing.T) {
	line := []geo.Coord{
		{Lat: -34.9211, Lon: 138.5958},
		{Lat: -34.9400, Lon: 138.5900},
		{Lat: -35.1000, Lon: 138.5500},
	}
	for _, p := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
		got := Interpolate(line, p)
		assert.GreaterOrEqual(t, got.Lat, -35.1000)
		assert.LessOrEqual(t, got.Lat, -34.9211)
		assert.GreaterOrEqual(t, got.Lon, 138.5500)
		assert.LessOrEqual(t, got.Lon, 138.5958)
	}
}
