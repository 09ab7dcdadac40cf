package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port              int `yaml:"port" validate:"gt=0"`
	RateLimitPerSec   int `yaml:"rateLimitPerSec" validate:"gte=0"`
	RateLimitBurst    int `yaml:"rateLimitBurst" validate:"gte=0"`
	ShutdownTimeoutMS int `yaml:"shutdownTimeoutMS" validate:"gte=0"`
}

// FeedConfig contains GTFS-Realtime feed configuration
type FeedConfig struct {
	VehiclePositionsURL string `yaml:"vehiclePositionsURL" validate:"omitempty,url"`
	TripUpdatesURL      string `yaml:"tripUpdatesURL" validate:"omitempty,url"`
	VehicleTimeoutMS    int    `yaml:"vehicleTimeoutMS" validate:"gte=0"`
	TripUpdateTimeoutMS int    `yaml:"tripUpdateTimeoutMS" validate:"gte=0"`
	CacheMaxAgeSec      int    `yaml:"cacheMaxAgeSec" validate:"gte=0"`
	MinPayloadBytes     int    `yaml:"minPayloadBytes" validate:"gte=0"`
}

// RegionConfig contains the geofence bounds, the network reference point
// (the CBD, used for inbound/outbound inference) and the operator timezone.
type RegionConfig struct {
	MinLat    float64 `yaml:"minLat"`
	MaxLat    float64 `yaml:"maxLat"`
	MinLon    float64 `yaml:"minLon"`
	MaxLon    float64 `yaml:"maxLon"`
	CenterLat float64 `yaml:"centerLat"`
	CenterLon float64 `yaml:"centerLon"`
	Timezone  string  `yaml:"timezone"`
}

// DataConfig points at optional reference-data files loaded at startup.
type DataConfig struct {
	StopNamesPath string `yaml:"stopNamesPath" validate:"omitempty,filepath"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Feed   FeedConfig   `yaml:"feed"`
	Region RegionConfig `yaml:"region"`
	Data   DataConfig   `yaml:"data"`
}
