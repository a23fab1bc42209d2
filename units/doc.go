// Package units holds unit-collection helpers and combat heuristics over
// plain Unit values: centroids, nearest and range queries, facing checks and
// target selection. It also answers pylon power coverage over a height grid
// and per-type turn speed.
//
// Functions that need at least one unit return ErrNoUnits on empty input.
// Filters return a new slice and never reorder or modify their input.
package units
