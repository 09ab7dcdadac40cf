package feed

import (
	"strings"

	"metrotracker/routes"
)

// trainRouteIDs covers the numeric IDs, full names and GTFS-RT short codes
// Adelaide Metro uses for rail services.
var trainRouteIDs = map[string]struct{}{
	"1": {}, "2": {}, "3": {}, "4": {}, "5": {}, "6": {}, "7": {},
	"Belair": {}, "Gawler": {}, "Seaford": {}, "Flinders": {},
	"Outer Harbor": {}, "Grange": {}, "Tonsley": {},
	"BEL": {}, "GAWC": {}, "GAW": {}, "SEAFRD": {}, "FLNDRS": {},
	"OUTHA": {}, "PTDOCK": {}, "GRNG": {}, "TONSL": {},
}

var tramRouteIDs = map[string]struct{}{
	"Glenelg": {}, "Botanic": {}, "glenelg": {}, "botanic": {},
	"GLNELG": {}, "BTANIC": {}, "FESTVL": {},
}

var trainPrefixes = []string{"1:", "2:", "3:", "4:", "5:", "6:", "7:"}

// ClassifyRoute maps a GTFS-RT route ID to a vehicle class. Anything not
// recognisably a train or tram is a bus.
func ClassifyRoute(routeID string) routes.Class {
	if _, ok := trainRouteIDs[routeID]; ok {
		return routes.Train
	}
	for _, p := range trainPrefixes {
		if strings.HasPrefix(routeID, p) {
			return routes.Train
		}
	}
	if _, ok := tramRouteIDs[routeID]; ok {
		return routes.Tram
	}
	return routes.Bus
}

var routeNames = map[string]string{
	"1": "Belair", "2": "Gawler Central", "3": "Seaford", "4": "Flinders",
	"5": "Outer Harbor", "6": "Grange", "7": "Tonsley",
	"Belair": "Belair", "Gawler": "Gawler Central", "Seaford": "Seaford",
	"Flinders": "Flinders", "Outer Harbor": "Outer Harbor",
	"Grange": "Grange", "Tonsley": "Tonsley",
	"Glenelg": "Glenelg Tram", "Botanic": "Botanic Tram",
	"BEL": "Belair", "GAWC": "Gawler Central", "GAW": "Gawler",
	"SEAFRD": "Seaford", "FLNDRS": "Flinders", "OUTHA": "Outer Harbor",
	"PTDOCK": "Port Dock", "GRNG": "Grange", "TONSL": "Tonsley",
	"GLNELG": "Glenelg Tram", "BTANIC": "Botanic Tram",
	"FESTVL": "Entertainment Centre",
}

// RouteName returns the display name for a route ID, or "Route <id>".
func RouteName(routeID string) string {
	if name, ok := routeNames[routeID]; ok {
		return name
	}
	return "Route " + routeID
}

var routeDestinations = map[string]string{
	"1": "Belair", "Belair": "Belair",
	"2": "Gawler Central", "Gawler": "Gawler Central",
	"3": "Seaford", "Seaford": "Seaford",
	"4": "Flinders", "Flinders": "Flinders",
	"5": "Outer Harbor", "Outer Harbor": "Outer Harbor",
	"6": "Grange", "Grange": "Grange",
	"7": "Tonsley", "Tonsley": "Tonsley",
	"Glenelg": "Glenelg",
	"Botanic": "Botanic Gardens",
}

// RouteDestination returns the outbound destination for a route ID, with
// "City" as the catch-all for buses and unknown routes.
func RouteDestination(routeID string) string {
	if dest, ok := routeDestinations[routeID]; ok {
		return dest
	}
	return "City"
}
