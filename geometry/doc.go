// Package geometry provides planar point arithmetic for unit positions:
// distances, headings, angle differences and translations.
//
// Points are grid.Point values in world coordinates (x, y). Angles are in
// radians. None of the functions allocate or fail; degenerate input
// (coincident points, zero-length vectors) has a documented result.
package geometry
