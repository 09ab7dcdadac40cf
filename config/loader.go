package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultConfig returns the configuration used when no config.yml overrides
// are present. The values match the Adelaide Metro deployment.
func DefaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Port:              8181,
			RateLimitPerSec:   25,
			RateLimitBurst:    50,
			ShutdownTimeoutMS: 10000,
		},
		Feed: FeedConfig{
			VehiclePositionsURL: "https://gtfs.adelaidemetro.com.au/v1/realtime/vehicle_positions",
			TripUpdatesURL:      "https://gtfs.adelaidemetro.com.au/v1/realtime/trip_updates",
			VehicleTimeoutMS:    15000,
			TripUpdateTimeoutMS: 10000,
			CacheMaxAgeSec:      60,
			MinPayloadBytes:     100,
		},
		Region: RegionConfig{
			MinLat:    -35.25,
			MaxLat:    -34.55,
			MinLon:    138.40,
			MaxLon:    138.80,
			CenterLat: -34.9211,
			CenterLon: 138.5958,
			Timezone:  "Australia/Adelaide",
		},
	}
}

// LoadAppConfig loads and validates the application configuration from
// config.yml, falling back to defaults for anything left unset.
func LoadAppConfig() (AppConfig, error) {
	paths := []string{"config.yml", "./config/config.yml"}
	if p := os.Getenv("METRO_CONFIG"); p != "" {
		paths = append([]string{p}, paths...)
	}
	cfg := DefaultConfig()
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	// No file is fine; the defaults stand on their own.
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnvOverrides(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides maps a handful of environment variables onto the config,
// for the values operators most commonly need to change per deployment.
func applyEnvOverrides(cfg *AppConfig) {
	if s := os.Getenv("METRO_PORT"); s != "" {
		if p, err := strconv.Atoi(s); err == nil && p > 0 {
			cfg.Server.Port = p
		}
	}
	if s := os.Getenv("METRO_VEHICLE_POSITIONS_URL"); s != "" {
		cfg.Feed.VehiclePositionsURL = s
	}
	if s := os.Getenv("METRO_TRIP_UPDATES_URL"); s != "" {
		cfg.Feed.TripUpdatesURL = s
	}
	if s := os.Getenv("METRO_CACHE_MAX_AGE_SEC"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			cfg.Feed.CacheMaxAgeSec = v
		}
	}
}
