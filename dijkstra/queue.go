package dijkstra

// nodeItem is a cell and the distance it was queued with.
type nodeItem struct {
	idx  int     // linearised cell index
	dist float64 // distance at push time
}

// nodePQ is a min-heap of nodeItem ordered by dist. Relaxation pushes a new
// item instead of decreasing a key; outdated items are skipped when popped
// because their cell is already settled.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index so equal distances pop in a
// reproducible order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
