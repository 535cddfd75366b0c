package core

import "github.com/pkg/errors"

// EdgePolicy controls what happens at the borders of a bounded grid.
type EdgePolicy uint8

const (
	// EdgeDead treats everything outside the grid as permanently dead.
	// Out-of-range writes are dropped.
	EdgeDead EdgePolicy = iota
	// EdgeWrap joins opposite borders into a torus.
	EdgeWrap
	// EdgeStrict rejects out-of-range writes and moves with ErrBoundary.
	EdgeStrict
)

// ErrBoundary reports an attempted mutation or move outside a bounded grid.
var ErrBoundary = errors.New("outside grid bounds")

// ParseEdgePolicy maps a configuration string to an EdgePolicy.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "dead":
		return EdgeDead, nil
	case "wrap":
		return EdgeWrap, nil
	case "strict":
		return EdgeStrict, nil
	}
	return EdgeDead, errors.Errorf("unknown edge policy %q (want dead, wrap or strict)", s)
}

// String returns the configuration name of the policy.
func (e EdgePolicy) String() string {
	switch e {
	case EdgeWrap:
		return "wrap"
	case EdgeStrict:
		return "strict"
	}
	return "dead"
}

// Grid is the cell storage contract shared by bounded and unbounded worlds.
// Reads are total: coordinates outside a bounded grid yield the background
// value under EdgeDead and EdgeStrict, and fold onto the torus under EdgeWrap.
type Grid interface {
	Get(x, y int) uint8
	Set(x, y int, v uint8) error
	Bounds() (w, h int, bounded bool)
	Edge() EdgePolicy
	Population() int
	Each(fn func(p Point, v uint8))
}

// DenseGrid stores a bounded grid of byte-sized cell values in row-major order.
type DenseGrid struct {
	W, H int
	edge EdgePolicy
	data []uint8
}

// NewDenseGrid allocates a bounded grid with the given dimensions.
func NewDenseGrid(w, h int, edge EdgePolicy) (*DenseGrid, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("grid dimensions must be positive, got %dx%d", w, h)
	}
	return &DenseGrid{W: w, H: h, edge: edge, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so engines can read/write values directly.
func (g *DenseGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *DenseGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *DenseGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with the background value.
func (g *DenseGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Get returns the value at (x, y). Out-of-range reads fold onto the torus
// under EdgeWrap and read as background otherwise.
func (g *DenseGrid) Get(x, y int) uint8 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		if g.edge != EdgeWrap {
			return 0
		}
		x, y = g.Wrap(x, y)
	}
	return g.data[y*g.W+x]
}

// Set writes v at (x, y). Out-of-range writes fold onto the torus under
// EdgeWrap, are dropped under EdgeDead and fail with ErrBoundary under
// EdgeStrict.
func (g *DenseGrid) Set(x, y int, v uint8) error {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		switch g.edge {
		case EdgeWrap:
			x, y = g.Wrap(x, y)
		case EdgeStrict:
			return errors.Wrapf(ErrBoundary, "set (%d, %d) on %dx%d grid", x, y, g.W, g.H)
		default:
			return nil
		}
	}
	g.data[y*g.W+x] = v
	return nil
}

// Bounds returns the grid dimensions.
func (g *DenseGrid) Bounds() (w, h int, bounded bool) { return g.W, g.H, true }

// Edge returns the configured edge policy.
func (g *DenseGrid) Edge() EdgePolicy { return g.edge }

// Population returns the number of non-background cells.
func (g *DenseGrid) Population() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Each calls fn for every non-background cell in row-major order.
func (g *DenseGrid) Each(fn func(p Point, v uint8)) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if v := g.data[y*g.W+x]; v != 0 {
				fn(Point{X: x, Y: y}, v)
			}
		}
	}
}

// SparseGrid stores only non-background cells, keyed by coordinate. It has no
// borders: reads and writes succeed at any coordinate.
type SparseGrid struct {
	cells map[Point]uint8
}

// NewSparseGrid returns an empty unbounded grid.
func NewSparseGrid() *SparseGrid {
	return &SparseGrid{cells: make(map[Point]uint8)}
}

// Get returns the value at (x, y), background for cells never written.
func (g *SparseGrid) Get(x, y int) uint8 { return g.cells[Point{X: x, Y: y}] }

// Set writes v at (x, y). Writing the background value releases the cell, so
// the map never holds more entries than there are non-background cells.
func (g *SparseGrid) Set(x, y int, v uint8) error {
	p := Point{X: x, Y: y}
	if v == 0 {
		delete(g.cells, p)
		return nil
	}
	g.cells[p] = v
	return nil
}

// Bounds reports that the grid is unbounded.
func (g *SparseGrid) Bounds() (w, h int, bounded bool) { return 0, 0, false }

// Edge returns EdgeDead; an unbounded grid has no borders to hit.
func (g *SparseGrid) Edge() EdgePolicy { return EdgeDead }

// Population returns the number of non-background cells.
func (g *SparseGrid) Population() int { return len(g.cells) }

// Each calls fn for every non-background cell in unspecified order.
func (g *SparseGrid) Each(fn func(p Point, v uint8)) {
	for p, v := range g.cells {
		fn(p, v)
	}
}
