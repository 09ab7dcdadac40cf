package track

import "metrotracker/geo"

// fallbackPosition is central Adelaide, returned when a route carries no
// geometry at all.
var fallbackPosition = geo.Coord{Lat: -34.9285, Lon: 138.6007}

// Interpolate returns the point a fraction progress (0..1) along the
// waypoint polyline, by cumulative planar distance. Progress past either
// end clamps to the corresponding terminus.
func Interpolate(waypoints []geo.Coord, progress float64) geo.Coord {
	if len(waypoints) == 0 {
		return fallbackPosition
	}
	if len(waypoints) == 1 {
		return waypoints[0]
	}

	total := 0.0
	for i := 0; i < len(waypoints)-1; i++ {
		total += geo.PlanarDistance(waypoints[i], waypoints[i+1])
	}
	if total == 0 {
		return waypoints[0]
	}

	target := total * progress
	covered := 0.0
	for i := 0; i < len(waypoints)-1; i++ {
		a, b := waypoints[i], waypoints[i+1]
		segment := geo.PlanarDistance(a, b)
		if covered+segment >= target {
			frac := 0.0
			if segment > 0 {
				frac = (target - covered) / segment
			}
			return geo.Coord{
				Lat: a.Lat + (b.Lat-a.Lat)*frac,
				Lon: a.Lon + (b.Lon-a.Lon)*frac,
			}
		}
		covered += segment
	}
	return waypoints[len(waypoints)-1]
}
