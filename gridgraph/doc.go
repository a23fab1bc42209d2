// Package gridgraph treats a 2D grid of cells as a graph for region
// analysis: flood fills, connected components and bounding boxes.
//
// What:
//
//   - FloodFill collects cells reachable from a start cell that share its
//     terrain height, are pathable, lie within a Euclidean radius and are not
//     in a cutoff set.
//   - ConnectedComponents identifies islands of pathable cells.
//   - BoundingBox and BoundingBoxSet report per-axis extents of a cell set.
//
// Why:
//
//   - Game maps: plateau and ramp detection, choke analysis, base areas.
//   - Placement: restricting a building scan to one connected region.
//
// Complexity:
//
//   - FloodFill:           O(R), Memory: O(R) where R is the number of cells visited.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - BoundingBox:         O(n).
//
// Options:
//
//   - WithConnectivity(Conn4 | Conn8): neighbor set used by the traversals
//     (default Conn4).
//
// Errors:
//
//   - ErrInvalidShape: nil grids or grids of differing shape.
//   - ErrOutOfBounds: the flood fill start is off the grid.
//   - ErrInvalidArgument: negative or NaN flood radius.
//   - ErrEmptyInput: bounding box of an empty collection.
package gridgraph
