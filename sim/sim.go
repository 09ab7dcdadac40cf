// Package sim generates plausible vehicle positions along the static route
// geometry when the live feed has nothing to offer. Generation is seeded per
// request so repeated calls paint a stable picture.
package sim

import (
	"math/rand"
	"strconv"
	"time"

	"metrotracker/config"
	"metrotracker/feed"
	"metrotracker/geo"
	"metrotracker/internal/clock"
	"metrotracker/routes"
	"metrotracker/track"
)

// DefaultSeed keeps simulated fleets stable across requests.
const DefaultSeed = 42

// Per-class placement and speed parameters.
var classParams = map[routes.Class]struct {
	perRoute int
	jitter   float64
	minSpeed int
	maxSpeed int
	statuses []string
}{
	routes.Train: {3, 0.001, 40, 80, []string{"on-time", "on-time", "on-time", "delayed"}},
	routes.Tram:  {3, 0.0005, 20, 50, []string{"on-time", "on-time", "on-time", "delayed"}},
	routes.Bus:   {4, 0.002, 30, 60, []string{"on-time", "on-time", "delayed", "early"}},
}

// Generator simulates vehicles over the route catalog.
type Generator struct {
	catalog  *routes.Catalog
	resolver *track.Resolver
	bounds   geo.Bounds
	loc      *time.Location
	clk      clock.Clock
	seed     int64
}

// NewGenerator builds a generator over the catalog and region geofence.
func NewGenerator(catalog *routes.Catalog, resolver *track.Resolver, region config.RegionConfig, loc *time.Location, clk clock.Clock) *Generator {
	return &Generator{
		catalog:  catalog,
		resolver: resolver,
		bounds: geo.Bounds{
			MinLat: region.MinLat, MaxLat: region.MaxLat,
			MinLon: region.MinLon, MaxLon: region.MaxLon,
		},
		loc:  loc,
		clk:  clk,
		seed: DefaultSeed,
	}
}

// Vehicles simulates the fleet, optionally restricted to one route ID or
// class. Trains come first, then trams, then buses, evenly spread along
// their routes with a little positional jitter.
func (g *Generator) Vehicles(routeID string, class routes.Class) []feed.Vehicle {
	rng := rand.New(rand.NewSource(g.seed))
	updatedAt := feed.FormatLocal(g.clk.Now(), g.loc)

	var out []feed.Vehicle
	for _, route := range g.catalog.All() {
		if routeID != "" && route.ID != routeID {
			continue
		}
		if class != "" && route.Class != class {
			continue
		}
		out = append(out, g.routeVehicles(rng, route, updatedAt)...)
	}
	return out
}

func (g *Generator) routeVehicles(rng *rand.Rand, route routes.Route, updatedAt string) []feed.Vehicle {
	p := classParams[route.Class]

	var out []feed.Vehicle
	for i := 0; i < p.perRoute; i++ {
		progress := (float64(i) + 0.5) / float64(p.perRoute)
		pos := track.Interpolate(route.Waypoints, progress)
		pos.Lat += uniform(rng, -p.jitter, p.jitter)
		pos.Lon += uniform(rng, -p.jitter, p.jitter)

		if !g.bounds.Contains(pos) {
			continue
		}

		nextProgress := progress + 0.01
		if nextProgress > 1 {
			nextProgress = 1
		}
		ahead := track.Interpolate(route.Waypoints, nextProgress)
		nextStop, arrivalMins := g.resolver.NextStop(pos, route.Waypoints, route.Class, route.ID)

		out = append(out, feed.Vehicle{
			ID:             route.ID + "_" + strconv.Itoa(i),
			RouteID:        route.ID,
			RouteName:      route.Name,
			Class:          route.Class,
			Lat:            pos.Lat,
			Lon:            pos.Lon,
			Bearing:        geo.Bearing(pos, ahead),
			Speed:          float64(randInt(rng, p.minSpeed, p.maxSpeed)),
			UpdatedAt:      updatedAt,
			Destination:    choice(rng, route.Destinations),
			NextStop:       nextStop,
			ArrivalMinutes: arrivalMins,
			Status:         choice(rng, p.statuses),
		})
	}
	return out
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// randInt draws from [lo, hi] inclusive.
func randInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}

func choice(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}
