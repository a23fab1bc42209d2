package placement

// FindLocations returns every origin in the scan region whose footprint
// passes, in row-major scan order (y outer, x inner).
//
// A candidate (x, y) passes when:
//   - the Width×Height extent lies on the grid;
//   - every occupied kernel offset (j, i) maps to a cell (y+j, x+i) that
//     passes the CanPlace cell rule and is not flagged in Layers.Avoid;
//   - with IncludeAddon, the addon block at (x+Width, y) passes the same way.
//
// A Query whose Kernel has no occupied offsets checks every cell of the
// Width×Height rectangle.
//
// The result is deterministic for fixed inputs. Strides ≤ 0 are treated as 1.
//
// Complexity: O(candidates × occupied kernel cells).
func FindLocations(q Query, opts ...Option) []Origin {
	cfg := gatherOptions(opts)
	xStride, yStride := max(q.XStride, 1), max(q.YStride, 1)
	rows, cols := q.Layers.Placement.Shape()

	var out []Origin
	for y := q.YBounds.Min; y < q.YBounds.Max; y += yStride {
		if y+q.Height > rows {
			break
		}
		if y < 0 {
			continue
		}
		for x := q.XBounds.Min; x < q.XBounds.Max; x += xStride {
			if x+q.Width > cols {
				break
			}
			if x >= 0 && q.passes(x, y, cfg) {
				out = append(out, Origin{X: x, Y: y})
			}
		}
	}

	return out
}

// passes evaluates one candidate origin. A kernel without offsets, such as
// the zero Kernel, checks the full Width×Height rectangle instead.
func (q Query) passes(x, y int, cfg Options) bool {
	l := q.Layers
	if len(q.Kernel.offsets) == 0 {
		if !l.blockClear(y, x, q.Height, q.Width, cfg) {
			return false
		}
	}
	for _, off := range q.Kernel.offsets {
		r, c := y+off.Row, x+off.Col
		if !l.cellPasses(r, c, cfg) || l.avoided(r, c) {
			return false
		}
	}
	if !cfg.IncludeAddon {
		return true
	}

	return l.blockClear(y, x+q.Width, AddonHeight, AddonWidth, cfg)
}

// blockClear is rectPasses that also rejects avoided cells.
func (l Layers) blockClear(row, col, h, w int, cfg Options) bool {
	for r := row; r < row+h; r++ {
		for c := col; c < col+w; c++ {
			if !l.cellPasses(r, c, cfg) || l.avoided(r, c) {
				return false
			}
		}
	}

	return true
}
