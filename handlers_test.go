package metrotracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"

	"metrotracker/config"
	"metrotracker/feed"
	"metrotracker/internal/clock"
	"metrotracker/metrics"
	"metrotracker/routes"
	"metrotracker/sim"
	"metrotracker/track"
)

var adelaideTZ = time.FixedZone("ACDT", 10*3600+30*60)

func newTestApp(fetch func(context.Context) ([]feed.Vehicle, error)) *App {
	cfg := config.DefaultConfig()
	catalog := routes.NewCatalog(nil)
	clk := clock.NewMockClock(time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC))
	mx := metrics.New()
	resolver := track.NewResolver(catalog)

	if fetch == nil {
		fetch = func(context.Context) ([]feed.Vehicle, error) {
			return nil, errors.New("feed unavailable")
		}
	}

	return &App{
		cfg:      cfg,
		catalog:  catalog,
		resolver: resolver,
		cache:    feed.NewCache(fetch, clk, mx),
		sim:      sim.NewGenerator(catalog, resolver, cfg.Region, adelaideTZ, clk),
		mx:       mx,
		clk:      clk,
		loc:      adelaideTZ,
	}
}

func doJSON(t *testing.T, handler http.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestHandleHealth(t *testing.T) {
	app := newTestApp(nil)
	rec, body := doJSON(t, app.handleHealth, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, Version, body["version"])
	assert.Equal(t, "2026-01-15T19:30:00+10:30", body["timestamp"])
}

func TestHandleVehiclesFallsBackToSimulation(t *testing.T) {
	app := newTestApp(nil)
	rec, body := doJSON(t, app.handleVehicles, http.MethodGet, "/api/vehicles", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "simulation", body["source"])
	assert.Greater(t, body["count"].(float64), 0.0)
}

func TestHandleVehiclesServesLiveSnapshot(t *testing.T) {
	app := newTestApp(func(context.Context) ([]feed.Vehicle, error) {
		return []feed.Vehicle{
			{ID: "t1", RouteID: "GAWC", Class: routes.Train},
			{ID: "b1", RouteID: "G40", Class: routes.Bus},
		}, nil
	})

	rec, body := doJSON(t, app.handleVehicles, http.MethodGet, "/api/vehicles?type=train", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gtfs-rt-live", body["source"])
	assert.Equal(t, 1.0, body["count"])

	vehicles := body["vehicles"].([]any)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "t1", vehicles[0].(map[string]any)["id"])
}

func TestHandleRoutesPolylineRoundTrip(t *testing.T) {
	app := newTestApp(nil)
	rec, body := doJSON(t, app.handleRoutes, http.MethodGet, "/api/routes?type=tram", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2.0, body["count"])

	entries := body["routes"].([]any)
	first := entries[0].(map[string]any)
	encoded, ok := first["polyline"].(string)
	require.True(t, ok)
	require.NotEmpty(t, encoded)

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	require.NoError(t, err)
	route, found := app.catalog.Route(first["id"].(string))
	require.True(t, found)
	require.Len(t, coords, len(route.Waypoints))
	assert.InDelta(t, route.Waypoints[0].Lat, coords[0][0], 1e-4)
	assert.InDelta(t, route.Waypoints[0].Lon, coords[0][1], 1e-4)
}

func TestHandleNearbyRequiresCoordinates(t *testing.T) {
	app := newTestApp(nil)

	rec, body := doJSON(t, app.handleNearby, http.MethodGet, "/api/nearby?lat=-34.92", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])

	rec, _ = doJSON(t, app.handleNearby, http.MethodGet, "/api/nearby?lat=abc&lon=138.59", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleNearbyDefaultsAndOrdering(t *testing.T) {
	app := newTestApp(nil)
	rec, body := doJSON(t, app.handleNearby, http.MethodGet, "/api/nearby?lat=-34.9211&lon=138.5958", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 500.0, body["radius"])

	stops := body["stops"].([]any)
	assert.LessOrEqual(t, len(stops), 5)
	var prev float64 = -1
	for _, s := range stops {
		d := s.(map[string]any)["distance"].(float64)
		assert.LessOrEqual(t, d, 500.0)
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestHandleStops(t *testing.T) {
	app := newTestApp(nil)

	_, body := doJSON(t, app.handleStops, http.MethodGet, "/api/stops", "")
	assert.Equal(t, float64(len(app.catalog.AllStops())), body["count"])

	_, body = doJSON(t, app.handleStops, http.MethodGet, "/api/stops?lat=-34.9211&lon=138.5958&radius=1", "")
	stops := body["stops"].([]any)
	require.NotEmpty(t, stops)
	for _, s := range stops {
		assert.LessOrEqual(t, s.(map[string]any)["distance"].(float64), 1.0)
	}
}

func TestHandleAlertsRouteFilter(t *testing.T) {
	app := newTestApp(nil)

	_, body := doJSON(t, app.handleAlerts, http.MethodGet, "/api/alerts", "")
	assert.Equal(t, 2.0, body["count"])

	_, body = doJSON(t, app.handleAlerts, http.MethodGet, "/api/alerts?route=Seaford", "")
	assert.Equal(t, 1.0, body["count"], "only the network-wide alert matches")

	_, body = doJSON(t, app.handleAlerts, http.MethodGet, "/api/alerts?route=Gawler", "")
	assert.Equal(t, 2.0, body["count"])
}

func TestHandlePlan(t *testing.T) {
	app := newTestApp(nil)

	rec, body := doJSON(t, app.handlePlan, http.MethodPost, "/api/plan", `{"from":"Adelaide","to":"Glenelg"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	itineraries := body["routes"].([]any)
	require.Len(t, itineraries, 1)
	leg := itineraries[0].(map[string]any)["legs"].([]any)[0].(map[string]any)
	assert.Equal(t, "Adelaide", leg["from"])
	assert.Equal(t, "Glenelg", leg["to"])

	rec, body = doJSON(t, app.handlePlan, http.MethodPost, "/api/plan", `{"from":"Adelaide"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])

	rec, _ = doJSON(t, app.handlePlan, http.MethodGet, "/api/plan", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleStatus(t *testing.T) {
	app := newTestApp(func(context.Context) ([]feed.Vehicle, error) {
		return []feed.Vehicle{{ID: "v1"}}, nil
	})

	_, body := doJSON(t, app.handleStatus, http.MethodGet, "/api/status", "")
	assert.Equal(t, "disconnected", body["status"])

	// Prime the cache through the vehicles endpoint.
	_, _ = doJSON(t, app.handleVehicles, http.MethodGet, "/api/vehicles", "")

	_, body = doJSON(t, app.handleStatus, http.MethodGet, "/api/status", "")
	assert.Equal(t, "connected", body["status"])
	assert.Equal(t, 1.0, body["vehicles_cached"])
	assert.Equal(t, "gtfs-rt", body["source"])
}

func TestHandleClosestStop(t *testing.T) {
	app := newTestApp(nil)

	rec, body := doJSON(t, app.handleClosestStop, http.MethodGet, "/api/stop/closest?lat=-34.9211&lon=138.5958", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "c_adelaide_station", body["id"])
	assert.Less(t, body["distance"].(float64), 0.3)

	rec, body = doJSON(t, app.handleClosestStop, http.MethodGet, "/api/stop/closest?lat=-34.92", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, body["error"])
}

func TestHandleStopTimes(t *testing.T) {
	app := newTestApp(nil)
	mux := app.routesMux()

	req := httptest.NewRequest(http.MethodGet, "/api/stop/rail_adl/times", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rail_adl", body["stop_id"])

	departures := body["departures"].([]any)
	require.Len(t, departures, 5)
	timeRe := regexp.MustCompile(`^\d{2}:\d{2}$`)
	prev := ""
	for _, e := range departures {
		d := e.(map[string]any)
		_, found := app.catalog.Route(d["route_id"].(string))
		assert.True(t, found)
		assert.NotEmpty(t, d["route_name"])
		assert.NotEmpty(t, d["destination"])
		assert.Regexp(t, timeRe, d["scheduled_time"])
		assert.Regexp(t, timeRe, d["estimated_time"])
		assert.Contains(t, []string{"on-time", "delayed", "early"}, d["status"])
		if p, ok := d["platform"].(string); ok {
			assert.Contains(t, []string{"1", "2", "3"}, p)
		}
		assert.GreaterOrEqual(t, d["scheduled_time"].(string), prev)
		prev = d["scheduled_time"].(string)
	}
}

func TestRateLimiterRejectsBursts(t *testing.T) {
	app := newTestApp(nil)
	app.cfg.Server.RateLimitPerSec = 1
	app.cfg.Server.RateLimitBurst = 1

	srv := NewServer(app)
	handler := srv.http.Handler

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "203.0.113.7:4444"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
