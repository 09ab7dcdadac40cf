// Package track places vehicles along route geometry: interpolating a
// position from a progress fraction, inferring direction of travel relative
// to the city, and resolving the next stop with an arrival estimate.
package track
