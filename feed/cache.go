package feed

import (
	"context"
	"log"
	"sync"
	"time"

	"metrotracker/internal/clock"
	"metrotracker/metrics"
)

// Source identifies where a vehicle snapshot came from.
type Source string

const (
	SourceLive  Source = "gtfs-rt-live"
	SourceStale Source = "gtfs-rt-stale"
	SourceNone  Source = ""
)

// Cache holds the most recent vehicle snapshot and refreshes it on demand.
// A fetch failure falls back to the stale snapshot when one exists, so brief
// feed outages do not blank the map.
type Cache struct {
	mu        sync.Mutex
	fetch     func(context.Context) ([]Vehicle, error)
	clk       clock.Clock
	mx        *metrics.Metrics
	vehicles  []Vehicle
	lastFetch time.Time
}

// NewCache wraps a fetch function, usually Fetcher.Fetch.
func NewCache(fetch func(context.Context) ([]Vehicle, error), clk clock.Clock, mx *metrics.Metrics) *Cache {
	return &Cache{fetch: fetch, clk: clk, mx: mx}
}

// Vehicles returns the cached snapshot if it is younger than maxAge,
// refreshing it otherwise. The second return names the snapshot's source;
// SourceNone means no data has ever been fetched.
func (c *Cache) Vehicles(ctx context.Context, maxAge time.Duration) ([]Vehicle, Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lastFetch.IsZero() && c.clk.Now().Sub(c.lastFetch) <= maxAge {
		c.mx.ObserveCache(metrics.CacheHit)
		return c.vehicles, SourceLive
	}

	vehicles, err := c.fetch(ctx)
	if err == nil && len(vehicles) > 0 {
		c.vehicles = vehicles
		c.lastFetch = c.clk.Now()
		c.mx.ObserveCache(metrics.CacheMiss)
		return vehicles, SourceLive
	}
	if err != nil {
		log.Printf("[feed] refresh failed: %v", err)
	}

	if len(c.vehicles) > 0 {
		c.mx.ObserveCache(metrics.CacheStale)
		return c.vehicles, SourceStale
	}
	c.mx.ObserveCache(metrics.CacheEmpty)
	return nil, SourceNone
}

// LastUpdate reports when the snapshot was last refreshed; ok is false
// before the first successful fetch.
func (c *Cache) LastUpdate() (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastFetch, !c.lastFetch.IsZero()
}

// CachedCount reports the size of the current snapshot.
func (c *Cache) CachedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.vehicles)
}
