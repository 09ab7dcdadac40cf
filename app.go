// Package metrotracker serves real-time public-transport positions for the
// Adelaide Metro network over a JSON API, backed by the operator's GTFS-RT
// feeds with a simulated fleet as fallback.
package metrotracker

import (
	"fmt"
	"log"
	"os"
	"time"

	"metrotracker/config"
	"metrotracker/feed"
	"metrotracker/internal/clock"
	"metrotracker/metrics"
	"metrotracker/routes"
	"metrotracker/sim"
	"metrotracker/track"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// App is the composition root: it owns the configuration, the static
// catalog, the feed cache, the simulator and the metrics registry, and
// hands them to the HTTP handlers.
type App struct {
	cfg      config.AppConfig
	catalog  *routes.Catalog
	resolver *track.Resolver
	cache    *feed.Cache
	sim      *sim.Generator
	mx       *metrics.Metrics
	clk      clock.Clock
	loc      *time.Location
}

// NewApp wires the application from configuration.
func NewApp(cfg config.AppConfig) (*App, error) {
	loc, err := time.LoadLocation(cfg.Region.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Region.Timezone, err)
	}

	names, err := routes.LoadStopNames(cfg.Data.StopNamesPath)
	if err != nil {
		return nil, err
	}
	catalog := routes.NewCatalog(names)
	if catalog.StopNameCount() > 0 {
		log.Printf("loaded %d stop names from %s", catalog.StopNameCount(), cfg.Data.StopNamesPath)
	}

	clk := clock.RealClock{}
	mx := metrics.New()
	resolver := track.NewResolver(catalog)
	fetcher := feed.NewFetcher(cfg.Feed, cfg.Region, catalog, loc, clk, mx)

	return &App{
		cfg:      cfg,
		catalog:  catalog,
		resolver: resolver,
		cache:    feed.NewCache(fetcher.Fetch, clk, mx),
		sim:      sim.NewGenerator(catalog, resolver, cfg.Region, loc, clk),
		mx:       mx,
		clk:      clk,
		loc:      loc,
	}, nil
}

// InitLogging configures the process-wide logger.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

func (a *App) cacheMaxAge() time.Duration {
	return time.Duration(a.cfg.Feed.CacheMaxAgeSec) * time.Second
}

func (a *App) localNow() string {
	return feed.FormatLocal(a.clk.Now(), a.loc)
}
