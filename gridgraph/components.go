package gridgraph

import "github.com/katalvlaran/spatial/grid"

// ConnectedComponents finds all contiguous regions (“islands”) of pathable
// cells (value non-zero), according to the configured connectivity.
// Components appear in row-major order of their first cell; cells within a
// component appear in breadth-first discovery order. A nil grid has none.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func ConnectedComponents(pathing *grid.Grid, opts ...Option) [][]grid.Cell {
	if pathing == nil {
		return nil
	}
	offsets := gatherOptions(opts).neighborOffsets()
	rows, cols := pathing.Shape()
	seen := make([]bool, pathing.Len())
	var comps [][]grid.Cell

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			i0 := pathing.Index(r, c)
			if seen[i0] || pathing.At(r, c) == 0 {
				continue
			}
			// BFS to collect component
			seen[i0] = true
			comp := []grid.Cell{{Row: r, Col: c}}
			for qi := 0; qi < len(comp); qi++ {
				u := comp[qi]
				for _, d := range offsets {
					v := u.Add(d[0], d[1])
					val, ok := pathing.Lookup(v.Row, v.Col)
					if !ok || val == 0 {
						continue
					}
					if vi := pathing.Index(v.Row, v.Col); !seen[vi] {
						seen[vi] = true
						comp = append(comp, v)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps
}
