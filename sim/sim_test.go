package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrotracker/config"
	"metrotracker/internal/clock"
	"metrotracker/routes"
	"metrotracker/track"
)

var adelaideTZ = time.FixedZone("ACDT", 10*3600+30*60)

func testGenerator() *Generator {
	catalog := routes.NewCatalog(nil)
	region := config.RegionConfig{
		MinLat: -35.25, MaxLat: -34.55,
		MinLon: 138.40, MaxLon: 138.80,
		CenterLat: -34.9211, CenterLon: 138.5958,
	}
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	return NewGenerator(catalog, track.NewResolver(catalog), region, adelaideTZ, clk)
}

func TestVehiclesDeterministicAcrossCalls(t *testing.T) {
	g := testGenerator()

	first := g.Vehicles("", "")
	second := g.Vehicles("", "")
	assert.Equal(t, first, second)
}

func TestVehiclesCountsAndOrdering(t *testing.T) {
	g := testGenerator()

	got := g.Vehicles("", "")
	require.NotEmpty(t, got)

	// Per-class grouping: trains first, then trams, then buses.
	lastTrain, firstBus := -1, len(got)
	counts := map[routes.Class]int{}
	for i, v := range got {
		counts[v.Class]++
		if v.Class == routes.Train {
			lastTrain = i
		}
		if v.Class == routes.Bus && i < firstBus {
			firstBus = i
		}
	}
	assert.Less(t, lastTrain, firstBus)

	// 6 train lines x 3 and 2 tram lines x 3, minus any jittered out of
	// bounds; the Belair hills end sits well inside the geofence so the
	// counts normally hold exactly.
	assert.LessOrEqual(t, counts[routes.Train], 18)
	assert.Greater(t, counts[routes.Train], 12)
	assert.LessOrEqual(t, counts[routes.Tram], 6)
	assert.Greater(t, counts[routes.Bus], counts[routes.Tram])
}

func TestVehiclesRouteAndClassFilters(t *testing.T) {
	g := testGenerator()

	glenelg := g.Vehicles("Glenelg", "")
	require.Len(t, glenelg, 3)
	for _, v := range glenelg {
		assert.Equal(t, "Glenelg", v.RouteID)
		assert.Equal(t, routes.Tram, v.Class)
	}

	trams := g.Vehicles("", routes.Tram)
	for _, v := range trams {
		assert.Equal(t, routes.Tram, v.Class)
	}
	assert.Len(t, trams, 6)
}

func TestVehiclesStayInBoundsWithPlausibleFields(t *testing.T) {
	g := testGenerator()

	for _, v := range g.Vehicles("", "") {
		assert.GreaterOrEqual(t, v.Lat, -35.25)
		assert.LessOrEqual(t, v.Lat, -34.55)
		assert.GreaterOrEqual(t, v.Lon, 138.40)
		assert.LessOrEqual(t, v.Lon, 138.80)

		assert.GreaterOrEqual(t, v.Bearing, 0.0)
		assert.Less(t, v.Bearing, 360.0)
		assert.NotEmpty(t, v.NextStop)
		assert.GreaterOrEqual(t, v.ArrivalMinutes, 1)
		assert.Contains(t, []string{"on-time", "delayed", "early"}, v.Status)
		assert.Equal(t, "2026-01-15T19:30:00+10:30", v.UpdatedAt)

		switch v.Class {
		case routes.Train:
			assert.GreaterOrEqual(t, v.Speed, 40.0)
			assert.LessOrEqual(t, v.Speed, 80.0)
		case routes.Tram:
			assert.GreaterOrEqual(t, v.Speed, 20.0)
			assert.LessOrEqual(t, v.Speed, 50.0)
		case routes.Bus:
			assert.GreaterOrEqual(t, v.Speed, 30.0)
			assert.LessOrEqual(t, v.Speed, 60.0)
		}
	}
}
