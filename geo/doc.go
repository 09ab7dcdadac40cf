// Package geo provides the coordinate primitives shared across the tracker:
// great-circle distance, initial bearing and the rectangular geofence used to
// discard out-of-area telemetry.
package geo
