// Package routes holds the static reference data for the network: route
// definitions with their waypoint polylines, per-route stop sequences, the
// stop-ID-to-name map with its fallback lookup chain, and a spatial index
// answering nearby-stop queries.
//
// All of it is immutable after Catalog construction and safe for concurrent
// reads.
package routes
