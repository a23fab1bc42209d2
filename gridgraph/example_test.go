package gridgraph_test

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/spatial/grid"
	"github.com/katalvlaran/spatial/gridgraph"
)

// ExampleConnectedComponents lists the islands of a small pathing grid.
func ExampleConnectedComponents() {
	pathing := grid.MustFrom2D([][]int{
		{0, 1, 1, 0, 2},
		{0, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	})

	for i, comp := range gridgraph.ConnectedComponents(pathing) {
		fmt.Printf("component %d: %v\n", i, comp)
	}

	// Output:
	// component 0: [(0,1) (0,2) (1,1)]
	// component 1: [(0,4) (1,4) (1,3) (2,3) (2,2)]
	// component 2: [(2,0)]
}

// ExampleFloodFill grows a plateau and reports its extent.
func ExampleFloodFill() {
	terrain := grid.MustFrom2D([][]int{
		{2, 2, 2, 1},
		{2, 2, 1, 1},
		{1, 1, 1, 1},
	})
	pathing, _ := grid.Filled(3, 4, 1)

	region, _ := gridgraph.FloodFill(grid.Cell{}, terrain, pathing, 10, mapset.New[grid.Cell]())
	lo, hi, _ := gridgraph.BoundingBoxSet(region)
	fmt.Println(region.Size(), lo, hi)

	// Output: 5 (0,0) (1,2)
}
