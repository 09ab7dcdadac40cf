package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrotracker/geo"
)

func TestCatalogAllOrdering(t *testing.T) {
	c := NewCatalog(nil)

	all := c.All()
	require.Equal(t, len(c.ByClass(Train))+len(c.ByClass(Tram))+len(c.ByClass(Bus)), len(all))

	assert.Len(t, c.ByClass(Train), 6)
	assert.Len(t, c.ByClass(Tram), 2)
	assert.Equal(t, Train, all[0].Class)
	assert.Equal(t, Bus, all[len(all)-1].Class)
}

func TestCatalogRouteIDsUnique(t *testing.T) {
	c := NewCatalog(nil)

	seen := map[string]bool{}
	for _, r := range c.All() {
		assert.False(t, seen[r.ID], "duplicate route id %s", r.ID)
		seen[r.ID] = true
		assert.True(t, Valid(string(r.Class)))
		assert.NotEmpty(t, r.Waypoints, "route %s has no waypoints", r.ID)
		assert.NotEmpty(t, r.Destinations, "route %s has no destinations", r.ID)
	}
}

func TestStopsForFallsBackToCorridor(t *testing.T) {
	c := NewCatalog(nil)

	belair := c.StopsFor(Train, "Belair")
	require.NotEmpty(t, belair)
	assert.Equal(t, "Adelaide Railway Station", belair[0].Name)

	g40 := c.StopsFor(Bus, "G40")
	assert.Equal(t, "Golden Grove", g40[len(g40)-1].Name)

	unknown := c.StopsFor(Bus, "no-such-route")
	assert.Equal(t, c.StopsFor(Bus, "also-missing"), unknown)
	assert.Equal(t, "Adelaide Railway Station", unknown[0].Name)
}

func TestNearbySortedAndBounded(t *testing.T) {
	c := NewCatalog(nil)
	center := geo.Coord{Lat: -34.9211, Lon: 138.5958}

	stops := c.Nearby(center, 2, 5)
	require.NotEmpty(t, stops)
	assert.LessOrEqual(t, len(stops), 5)

	for i, s := range stops {
		assert.LessOrEqual(t, s.DistanceKM, 2.0)
		if i > 0 {
			assert.GreaterOrEqual(t, s.DistanceKM, stops[i-1].DistanceKM)
		}
	}
	assert.Equal(t, "c_adelaide_station", stops[0].ID)
}

func TestNearbyNoLimitReturnsAllInRadius(t *testing.T) {
	c := NewCatalog(nil)
	center := geo.Coord{Lat: -34.9211, Lon: 138.5958}

	limited := c.Nearby(center, 2, 3)
	unlimited := c.Nearby(center, 2, 0)
	assert.GreaterOrEqual(t, len(unlimited), len(limited))
}

func TestClosest(t *testing.T) {
	c := NewCatalog(nil)

	// Right on top of Moseley Square.
	got, ok := c.Closest(geo.Coord{Lat: -34.978, Lon: 138.513})
	require.True(t, ok)
	assert.Equal(t, "sw_moseley_sq", got.ID)
	assert.InDelta(t, 0, got.DistanceKM, 0.01)
}
