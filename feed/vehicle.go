package feed

import (
	"time"

	"metrotracker/geo"
	"metrotracker/routes"
)

// Vehicle is one tracked vehicle as served by the API. The same shape is
// produced by the live feed and by the simulator.
type Vehicle struct {
	ID             string       `json:"id"`
	RouteID        string       `json:"route_id"`
	RouteName      string       `json:"route_name"`
	Class          routes.Class `json:"type"`
	Lat            float64      `json:"lat"`
	Lon            float64      `json:"lon"`
	Bearing        float64      `json:"bearing"`
	Speed          float64      `json:"speed"`
	Timestamp      int64        `json:"timestamp,omitempty"`
	TripID         string       `json:"trip_id,omitempty"`
	UpdatedAt      string       `json:"updated_at"`
	Destination    string       `json:"destination"`
	NextStop       string       `json:"next_stop"`
	ArrivalMinutes int          `json:"arrival_minutes"`
	Status         string       `json:"status"`
}

// Coord returns the vehicle position.
func (v Vehicle) Coord() geo.Coord {
	return geo.Coord{Lat: v.Lat, Lon: v.Lon}
}

// FormatLocal renders t in loc as ISO-8601 with the zone's UTC offset,
// e.g. 2026-01-15T09:30:00+10:30.
func FormatLocal(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02T15:04:05-07:00")
}

// Filter returns the vehicles matching the optional route and class
// filters. Empty selectors match everything.
func Filter(vehicles []Vehicle, routeID string, class routes.Class) []Vehicle {
	out := make([]Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if routeID != "" && v.RouteID != routeID {
			continue
		}
		if class != "" && v.Class != class {
			continue
		}
		out = append(out, v)
	}
	return out
}
