package gridgraph

import "github.com/katalvlaran/spatial/grid"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options contains tunable parameters for grid traversals.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// Option represents a functional option for FloodFill and ConnectedComponents.
type Option func(*Options)

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// WithConnectivity sets the neighbor connectivity.
// Panics on a value other than Conn4 or Conn8.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic("gridgraph: WithConnectivity requires Conn4 or Conn8")
	}

	return func(o *Options) { o.Conn = c }
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// conn4Offsets are (dRow, dCol) in N, E, S, W order.
var conn4Offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// neighborOffsets returns the (dRow, dCol) offsets of the configured connectivity.
func (o Options) neighborOffsets() [][2]int {
	if o.Conn == Conn8 {
		n8 := grid.NeighborOffsets8()
		return n8[:]
	}

	return conn4Offsets
}
