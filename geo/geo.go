package geo

import "math"

// Coord is a latitude/longitude pair in degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

const earthRadiusKM = 6371.0

// DistanceKM returns the haversine great-circle distance between two
// coordinates in kilometers.
func DistanceKM(a, b Coord) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKM * c
}

// DistanceM returns the haversine distance in meters.
func DistanceM(a, b Coord) float64 {
	return DistanceKM(a, b) * 1000
}

// Bearing returns the initial compass bearing from a to b in degrees,
// normalized to [0, 360).
func Bearing(a, b Coord) float64 {
	dLon := (b.Lon - a.Lon) * math.Pi / 180
	la1 := a.Lat * math.Pi / 180
	la2 := b.Lat * math.Pi / 180
	x := math.Sin(dLon) * math.Cos(la2)
	y := math.Cos(la1)*math.Sin(la2) - math.Sin(la1)*math.Cos(la2)*math.Cos(dLon)
	deg := math.Atan2(x, y) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// PlanarDistance is the Euclidean distance in raw degrees. It is not a real
// distance, but at city scale it orders candidates the same way the geodesic
// one does and is what the direction and closest-stop comparisons use.
func PlanarDistance(a, b Coord) float64 {
	dLat := a.Lat - b.Lat
	dLon := a.Lon - b.Lon
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// Bounds is an inclusive rectangular geofence.
type Bounds struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// Contains reports whether c lies inside the geofence, borders included.
func (b Bounds) Contains(c Coord) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat &&
		c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}
