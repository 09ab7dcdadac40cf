package metrotracker

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/twpayne/go-polyline"

	"metrotracker/feed"
	"metrotracker/geo"
	"metrotracker/routes"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (a *App) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": a.localNow(),
		"version":   Version,
	})
}

type vehiclesResponse struct {
	Vehicles  []feed.Vehicle `json:"vehicles"`
	Count     int            `json:"count"`
	Source    string         `json:"source"`
	UpdatedAt string         `json:"updated_at"`
}

// handleVehicles serves the live snapshot when the feed has one, falling
// back to the simulated fleet otherwise.
func (a *App) handleVehicles(w http.ResponseWriter, r *http.Request) {
	routeID := r.URL.Query().Get("route")
	class := routes.Class(r.URL.Query().Get("type"))

	vehicles, src := a.cache.Vehicles(r.Context(), a.cacheMaxAge())
	source := "gtfs-rt-live"
	if src == feed.SourceNone || len(vehicles) == 0 {
		vehicles = a.sim.Vehicles(routeID, class)
		source = "simulation"
		a.mx.SimulationServed.Inc()
	} else {
		vehicles = feed.Filter(vehicles, routeID, class)
	}

	writeJSON(w, http.StatusOK, vehiclesResponse{
		Vehicles:  vehicles,
		Count:     len(vehicles),
		Source:    source,
		UpdatedAt: a.localNow(),
	})
}

type routeEntry struct {
	routes.Route
	Polyline string `json:"polyline"`
}

// handleRoutes lists the static route table, each with its waypoints
// encoded as a Google polyline for map rendering.
func (a *App) handleRoutes(w http.ResponseWriter, r *http.Request) {
	var list []routes.Route
	if t := r.URL.Query().Get("type"); t != "" && routes.Valid(t) {
		list = a.catalog.ByClass(routes.Class(t))
	} else {
		list = a.catalog.All()
	}

	entries := make([]routeEntry, 0, len(list))
	for _, rt := range list {
		entries = append(entries, routeEntry{Route: rt, Polyline: encodePolyline(rt.Waypoints)})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"routes":     entries,
		"count":      len(entries),
		"updated_at": a.localNow(),
	})
}

func encodePolyline(waypoints []geo.Coord) string {
	coords := make([][]float64, len(waypoints))
	for i, wp := range waypoints {
		coords[i] = []float64{wp.Lat, wp.Lon}
	}
	return string(polyline.EncodeCoords(coords))
}

type nearbyStopEntry struct {
	ID       string       `json:"id,omitempty"`
	Name     string       `json:"name"`
	Lat      float64      `json:"lat"`
	Lon      float64      `json:"lon"`
	Class    routes.Class `json:"type"`
	Distance float64      `json:"distance"`
}

// handleNearby finds stops within a radius in meters of a point, closest
// first.
func (a *App) handleNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "lat and lon are required"})
		return
	}

	radiusM := 500.0
	if s := q.Get("radius"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			radiusM = v
		}
	}
	limit := 5
	if s := q.Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = v
		}
	}

	center := geo.Coord{Lat: lat, Lon: lon}
	found := a.catalog.Nearby(center, radiusM/1000, limit)
	stops := make([]nearbyStopEntry, 0, len(found))
	for _, s := range found {
		stops = append(stops, nearbyStopEntry{
			ID:       s.ID,
			Name:     s.Name,
			Lat:      s.Lat,
			Lon:      s.Lon,
			Class:    s.Class,
			Distance: math.Round(s.DistanceKM * 1000),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"stops":  stops,
		"center": center,
		"radius": radiusM,
	})
}

// handleClosestStop answers with the single nearest network stop and its
// distance in kilometers.
func (a *App) handleClosestStop(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "lat and lon required"})
		return
	}

	closest, ok := a.catalog.Closest(geo.Coord{Lat: lat, Lon: lon})
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no stops available"})
		return
	}
	writeJSON(w, http.StatusOK, closest)
}

// handleStops returns the full stop catalog, or the stops within a radius
// in kilometers (default 2) nearest-first when lat/lon are given.
func (a *App) handleStops(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		all := a.catalog.AllStops()
		writeJSON(w, http.StatusOK, map[string]any{"stops": all, "count": len(all)})
		return
	}

	radiusKM := 2.0
	if s := q.Get("radius"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			radiusKM = v
		}
	}

	found := a.catalog.Nearby(geo.Coord{Lat: lat, Lon: lon}, radiusKM, 0)
	stops := make([]nearbyStopEntry, 0, len(found))
	for _, s := range found {
		stops = append(stops, nearbyStopEntry{
			ID:       s.ID,
			Name:     s.Name,
			Lat:      s.Lat,
			Lon:      s.Lon,
			Class:    s.Class,
			Distance: math.Round(s.DistanceKM*100) / 100,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"stops": stops, "count": len(stops)})
}

// handleStatus reports live-feed connectivity.
func (a *App) handleStatus(w http.ResponseWriter, _ *http.Request) {
	last, ok := a.cache.LastUpdate()
	if ok && a.cache.CachedCount() > 0 {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":          "connected",
			"vehicles_cached": a.cache.CachedCount(),
			"last_update":     feed.FormatLocal(last, a.loc),
			"source":          "gtfs-rt",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "disconnected",
		"vehicles_cached": 0,
		"source":          "simulation",
	})
}
