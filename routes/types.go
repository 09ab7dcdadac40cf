package routes

import "metrotracker/geo"

// Class is the vehicle class a route is operated with.
type Class string

const (
	Train Class = "train"
	Tram  Class = "tram"
	Bus   Class = "bus"
)

// Valid reports whether s names a known vehicle class.
func Valid(s string) bool {
	switch Class(s) {
	case Train, Tram, Bus:
		return true
	}
	return false
}

// Route is one line of the network. Waypoints run terminus to terminus;
// direction of travel is inferred from which end is closer to the city.
type Route struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Color        string      `json:"color,omitempty"`
	Class        Class       `json:"type"`
	Destinations []string    `json:"destinations"`
	Waypoints    []geo.Coord `json:"waypoints"`
}

// Stop is a named coordinate. ID and Class are only set for the network-wide
// stop table; per-route stop sequences carry name and position only.
type Stop struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Class Class   `json:"type,omitempty"`
}

// Coord returns the stop position as a geo coordinate.
func (s Stop) Coord() geo.Coord {
	return geo.Coord{Lat: s.Lat, Lon: s.Lon}
}
