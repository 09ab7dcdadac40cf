// Package config loads and validates the tracker configuration from
// config.yml. All values have defaults matching the Adelaide Metro
// deployment, so an empty file (or no file at all, via DefaultConfig)
// still yields a working setup.
package config
