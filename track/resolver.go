package track

import (
	"math"

	"metrotracker/geo"
	"metrotracker/routes"
)

// cityCenter is the Adelaide Railway Station reference point that direction
// inference compares route ends against.
var cityCenter = geo.Coord{Lat: -34.9211, Lon: 138.5958}

// Speeds assumed for arrival estimates, km/h.
var classSpeedKMH = map[routes.Class]float64{
	routes.Train: 50,
	routes.Tram:  25,
	routes.Bus:   30,
}

// Resolver answers "what stop is this vehicle heading to" from a position,
// the route geometry and the catalog's ordered stop sequences.
type Resolver struct {
	catalog *routes.Catalog
	ref     geo.Coord
}

// NewResolver builds a resolver over the catalog, using the city centre as
// the direction reference.
func NewResolver(catalog *routes.Catalog) *Resolver {
	return &Resolver{catalog: catalog, ref: cityCenter}
}

// HeadingToCity reports whether travel along the polyline runs toward the
// city end. Stop sequences are ordered city end first, so a polyline whose
// first terminus sits closer to the reference point is walked backward.
func (r *Resolver) HeadingToCity(waypoints []geo.Coord) bool {
	if len(waypoints) == 0 {
		return false
	}
	first, last := waypoints[0], waypoints[len(waypoints)-1]
	return geo.PlanarDistance(first, r.ref) < geo.PlanarDistance(last, r.ref)
}

// NextStop resolves the upcoming stop name and an arrival estimate in whole
// minutes for a vehicle at pos on a route. The stop sequence is ordered city
// end first; heading to the city walks it backward, heading out walks it
// forward, clamping at either terminus. With no stop data it reports
// ("Unknown", 5).
func (r *Resolver) NextStop(pos geo.Coord, waypoints []geo.Coord, class routes.Class, routeID string) (string, int) {
	stops := r.catalog.StopsFor(class, routeID)
	if len(stops) == 0 {
		return "Unknown", 5
	}

	headingToCity := r.HeadingToCity(waypoints)

	closestIdx := 0
	closestDist := math.Inf(1)
	for i, s := range stops {
		d := geo.PlanarDistance(s.Coord(), pos)
		if d < closestDist {
			closestDist = d
			closestIdx = i
		}
	}

	var next routes.Stop
	if headingToCity {
		if closestIdx > 0 {
			next = stops[closestIdx-1]
		} else {
			next = stops[0]
		}
	} else {
		if closestIdx < len(stops)-1 {
			next = stops[closestIdx+1]
		} else {
			next = stops[len(stops)-1]
		}
	}

	return next.Name, arrivalMinutes(pos, next.Coord(), class)
}

// arrivalMinutes estimates the ride time to target at the class's assumed
// speed, never less than a minute.
func arrivalMinutes(pos, target geo.Coord, class routes.Class) int {
	speed, ok := classSpeedKMH[class]
	if !ok {
		speed = 30
	}
	mins := int(geo.DistanceKM(pos, target) / speed * 60)
	if mins < 1 {
		mins = 1
	}
	return mins
}
