package core

// Viewport is the w-by-h window of grid coordinates shown on screen.
// Panning moves the window; it never touches the grid underneath.
type Viewport struct {
	X, Y int
	W, H int
}

// Pan moves the viewport origin by (dx, dy) grid cells.
func (v *Viewport) Pan(dx, dy int) {
	v.X += dx
	v.Y += dy
}

// Contains reports whether the grid point p is visible in the viewport.
func (v Viewport) Contains(p Point) bool {
	return p.X >= v.X && p.X < v.X+v.W && p.Y >= v.Y && p.Y < v.Y+v.H
}

// Snapshot copies the cells under the viewport into dst in row-major order,
// reallocating only when dst is too small. Reads follow the grid's edge
// policy, so panning past a dead border shows background while a toroidal
// grid folds around.
func (v Viewport) Snapshot(g Grid, dst []uint8) []uint8 {
	n := v.W * v.H
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	i := 0
	for y := 0; y < v.H; y++ {
		for x := 0; x < v.W; x++ {
			dst[i] = g.Get(v.X+x, v.Y+y)
			i++
		}
	}
	return dst
}
