// Package feed ingests the Adelaide Metro GTFS-realtime feeds. It decodes
// vehicle positions, correlates them with trip updates for next-stop
// information, classifies routes into trains, trams and buses, and caches
// the resulting snapshot with a stale-fallback policy.
package feed
