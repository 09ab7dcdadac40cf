package routes

import (
	"math"
	"sort"

	"github.com/tidwall/rtree"

	"metrotracker/geo"
)

// NearbyStop is a catalog stop with the distance from a query point.
type NearbyStop struct {
	Stop
	DistanceKM float64 `json:"distance"`
}

// Catalog bundles the static network data behind one lookup surface:
// routes by class, ordered stop sequences for next-stop resolution, the
// stop-name table and an R-tree over the network stops for radius queries.
type Catalog struct {
	trains []Route
	trams  []Route
	buses  []Route
	byID   map[string]Route

	routeStops map[string][]Stop
	busStops   map[string][]Stop
	corridor   []Stop

	stops []Stop
	index rtree.RTreeG[Stop]

	names *StopNames
}

// NewCatalog builds the catalog from the built-in network data.
func NewCatalog(names *StopNames) *Catalog {
	if names == nil {
		names = NewStopNames(nil)
	}
	c := &Catalog{
		trains:     trainRoutes,
		trams:      tramRoutes,
		buses:      busRoutes,
		byID:       make(map[string]Route),
		routeStops: railTramStops,
		busStops:   busRouteStops,
		corridor:   busCorridorStops,
		stops:      networkStops,
		names:      names,
	}
	for _, r := range c.All() {
		c.byID[r.ID] = r
	}
	for _, s := range networkStops {
		pt := [2]float64{s.Lon, s.Lat}
		c.index.Insert(pt, pt, s)
	}
	return c
}

// All returns every route, trains first, then trams, then buses.
func (c *Catalog) All() []Route {
	out := make([]Route, 0, len(c.trains)+len(c.trams)+len(c.buses))
	out = append(out, c.trains...)
	out = append(out, c.trams...)
	out = append(out, c.buses...)
	return out
}

// ByClass returns the routes of one class, or nil for an unknown class.
func (c *Catalog) ByClass(class Class) []Route {
	switch class {
	case Train:
		return c.trains
	case Tram:
		return c.trams
	case Bus:
		return c.buses
	}
	return nil
}

// Route looks up a route by ID.
func (c *Catalog) Route(id string) (Route, bool) {
	r, ok := c.byID[id]
	return r, ok
}

// StopsFor returns the ordered stop sequence used for next-stop resolution.
// Trains and trams use their line's sequence; buses use their route's list
// if one exists, otherwise the generic corridor list.
func (c *Catalog) StopsFor(class Class, routeID string) []Stop {
	switch class {
	case Train, Tram:
		if stops, ok := c.routeStops[routeID]; ok {
			return stops
		}
	case Bus:
		if stops, ok := c.busStops[routeID]; ok {
			return stops
		}
		return c.corridor
	}
	return c.corridor
}

// AllStops returns the network-wide stop table.
func (c *Catalog) AllStops() []Stop { return c.stops }

// StopName resolves a GTFS stop ID to a display name.
func (c *Catalog) StopName(stopID string) string { return c.names.Lookup(stopID) }

// StopNameCount reports how many stop IDs the name table knows.
func (c *Catalog) StopNameCount() int { return c.names.Len() }

// Nearby returns the stops within radiusKM of center, closest first,
// capped at limit when limit > 0.
func (c *Catalog) Nearby(center geo.Coord, radiusKM float64, limit int) []NearbyStop {
	// One degree of latitude is ~111km; widen the longitude window by the
	// local latitude scale so the box fully covers the radius.
	dLat := radiusKM / 111.0
	dLon := dLat / math.Cos(center.Lat*math.Pi/180)
	if dLon < 0 {
		dLon = -dLon
	}
	min := [2]float64{center.Lon - dLon, center.Lat - dLat}
	max := [2]float64{center.Lon + dLon, center.Lat + dLat}

	var found []NearbyStop
	c.index.Search(min, max, func(_, _ [2]float64, s Stop) bool {
		d := geo.DistanceKM(center, s.Coord())
		if d <= radiusKM {
			found = append(found, NearbyStop{Stop: s, DistanceKM: d})
		}
		return true
	})

	sort.Slice(found, func(i, j int) bool { return found[i].DistanceKM < found[j].DistanceKM })
	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found
}

// Closest returns the nearest network stop to center, or false when the
// catalog is empty.
func (c *Catalog) Closest(center geo.Coord) (NearbyStop, bool) {
	best := NearbyStop{DistanceKM: math.Inf(1)}
	for _, s := range c.stops {
		d := geo.DistanceKM(center, s.Coord())
		if d < best.DistanceKM {
			best = NearbyStop{Stop: s, DistanceKM: d}
		}
	}
	return best, !math.IsInf(best.DistanceKM, 1)
}
