// Package placement answers "can a structure go here?" over a set of aligned
// constraint grids, for one origin (CanPlace) or for every origin of a
// strided region (FindLocations).
//
// Grids:
//
//   - Placement: non-zero where building is legal.
//   - Pathing:   non-zero where ground units can walk.
//   - Creep:     non-zero where creep is present (optional; nil means none).
//   - Avoid:     non-zero where nothing may be placed (scanner only; nil means none).
//
// Coordinates follow screen convention: Origin.X is the column and
// Origin.Y the row of the footprint's top-left cell, so a W×H footprint
// covers columns [X, X+W) and rows [Y, Y+H).
//
// A cell passes when it lies inside the grids, is legal for placement and
// pathing, and (when creep checking is active) carries no creep. Cells
// outside the grid always fail. Checks short-circuit on the first failing
// cell; nothing is written to any input.
//
// Complexity:
//
//   - CanPlace:      O(W×H).
//   - FindLocations: O(candidates × occupied kernel cells).
//
// Input validation lives in ValidateFootprint and ValidateQuery; the engines
// assume well-formed input and never return errors. Package safemode wires
// the two together.
package placement
