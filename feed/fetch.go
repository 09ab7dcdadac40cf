package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"metrotracker/config"
	"metrotracker/geo"
	"metrotracker/internal/clock"
	"metrotracker/metrics"
	"metrotracker/routes"
)

// tripInfo is the next-stop data extracted from a trip update.
type tripInfo struct {
	nextStopID  string
	arrivalUnix int64
}

// Fetcher pulls the vehicle-positions and trip-updates feeds and decodes
// them into Vehicle snapshots.
type Fetcher struct {
	cfg     config.FeedConfig
	bounds  geo.Bounds
	catalog *routes.Catalog
	loc     *time.Location
	clk     clock.Clock
	mx      *metrics.Metrics
	client  *http.Client
}

// NewFetcher wires a fetcher against the configured feed endpoints.
func NewFetcher(cfg config.FeedConfig, region config.RegionConfig, catalog *routes.Catalog, loc *time.Location, clk clock.Clock, mx *metrics.Metrics) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		bounds: geo.Bounds{
			MinLat: region.MinLat, MaxLat: region.MaxLat,
			MinLon: region.MinLon, MaxLon: region.MaxLon,
		},
		catalog: catalog,
		loc:     loc,
		clk:     clk,
		mx:      mx,
		client:  newFeedHTTPClient(cfg),
	}
}

// newFeedHTTPClient builds a dedicated client with explicit timeouts rather
// than relying on http.DefaultClient, which has none. The transport is
// cloned from the default one to keep proxy and HTTP/2 behaviour.
func newFeedHTTPClient(cfg config.FeedConfig) *http.Client {
	var transport *http.Transport
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		transport = t.Clone()
	} else {
		transport = &http.Transport{}
	}
	transport.MaxIdleConns = 20
	transport.MaxIdleConnsPerHost = 4
	transport.IdleConnTimeout = 90 * time.Second

	timeout := cfg.VehicleTimeoutMS
	if cfg.TripUpdateTimeoutMS > timeout {
		timeout = cfg.TripUpdateTimeoutMS
	}
	if timeout <= 0 {
		timeout = 15000
	}
	return &http.Client{
		Timeout:   time.Duration(timeout) * time.Millisecond,
		Transport: transport,
	}
}

// Fetch returns all in-bounds vehicles currently reported by the live feed.
func (f *Fetcher) Fetch(ctx context.Context) ([]Vehicle, error) {
	trips := f.fetchTripUpdates(ctx)

	fm, err := f.fetchFeed(ctx, f.cfg.VehiclePositionsURL, f.cfg.VehicleTimeoutMS)
	f.mx.ObserveFeedFetch("vehicle_positions", err == nil)
	if err != nil {
		return nil, fmt.Errorf("vehicle positions: %w", err)
	}

	now := f.clk.Now()
	updatedAt := FormatLocal(now, f.loc)

	var vehicles []Vehicle
	for _, e := range fm.Entity {
		if e.Vehicle == nil || e.Vehicle.Position == nil {
			continue
		}
		pos := e.Vehicle.Position
		if pos.Latitude == nil || pos.Longitude == nil {
			continue
		}
		coord := geo.Coord{Lat: float64(*pos.Latitude), Lon: float64(*pos.Longitude)}
		if !f.bounds.Contains(coord) {
			continue
		}

		routeID := "unknown"
		tripID := ""
		if e.Vehicle.Trip != nil {
			if e.Vehicle.Trip.RouteId != nil {
				routeID = *e.Vehicle.Trip.RouteId
			}
			if e.Vehicle.Trip.TripId != nil {
				tripID = *e.Vehicle.Trip.TripId
			}
		}

		v := Vehicle{
			RouteID:        routeID,
			RouteName:      RouteName(routeID),
			Class:          ClassifyRoute(routeID),
			Lat:            coord.Lat,
			Lon:            coord.Lon,
			TripID:         tripID,
			UpdatedAt:      updatedAt,
			Destination:    RouteDestination(routeID),
			NextStop:       "Unknown",
			ArrivalMinutes: 5,
			Status:         "on-time",
		}
		if e.Id != nil {
			v.ID = *e.Id
		}
		if pos.Bearing != nil {
			v.Bearing = float64(*pos.Bearing)
		}
		if pos.Speed != nil {
			v.Speed = math.Round(float64(*pos.Speed)*3.6*10) / 10
		}
		if e.Vehicle.Timestamp != nil {
			v.Timestamp = int64(*e.Vehicle.Timestamp)
		}

		if ti, ok := trips[tripID]; ok && tripID != "" {
			v.NextStop = f.catalog.StopName(ti.nextStopID)
			if ti.arrivalUnix > 0 {
				mins := int((ti.arrivalUnix - now.Unix()) / 60)
				if mins < 1 {
					mins = 1
				}
				v.ArrivalMinutes = mins
			}
		}

		vehicles = append(vehicles, v)
	}

	f.mx.SetFeedVehicles(len(vehicles))
	log.Printf("[feed] decoded %d vehicles", len(vehicles))
	return vehicles, nil
}

// fetchTripUpdates maps trip IDs to their first upcoming stop. Any failure
// degrades to no next-stop data rather than failing the vehicle fetch.
func (f *Fetcher) fetchTripUpdates(ctx context.Context) map[string]tripInfo {
	if f.cfg.TripUpdatesURL == "" {
		return nil
	}
	fm, err := f.fetchFeed(ctx, f.cfg.TripUpdatesURL, f.cfg.TripUpdateTimeoutMS)
	f.mx.ObserveFeedFetch("trip_updates", err == nil)
	if err != nil {
		log.Printf("[feed] trip updates unavailable: %v", err)
		return nil
	}

	trips := make(map[string]tripInfo)
	for _, e := range fm.Entity {
		if e.TripUpdate == nil || e.TripUpdate.Trip == nil || e.TripUpdate.Trip.TripId == nil {
			continue
		}
		if len(e.TripUpdate.StopTimeUpdate) == 0 {
			continue
		}
		stu := e.TripUpdate.StopTimeUpdate[0]
		if stu.StopId == nil {
			continue
		}
		ti := tripInfo{nextStopID: *stu.StopId}
		if stu.Arrival != nil && stu.Arrival.Time != nil {
			ti.arrivalUnix = *stu.Arrival.Time
		}
		trips[*e.TripUpdate.Trip.TripId] = ti
	}
	return trips
}

func (f *Fetcher) fetchFeed(ctx context.Context, url string, timeoutMS int) (*gtfsrtpb.FeedMessage, error) {
	if url == "" {
		return nil, errors.New("feed URL not configured")
	}
	if timeoutMS > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMS)*time.Millisecond)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", url, resp.Status)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(b) < f.cfg.MinPayloadBytes {
		return nil, fmt.Errorf("payload too small: %d bytes", len(b))
	}

	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, err
	}
	return &fm, nil
}
