// Package life implements Conway's Game of Life on bounded and unbounded
// grids.
package life

import (
	"strconv"

	"github.com/pkg/errors"

	"term-life/internal/core"
	"term-life/internal/patterns"
)

// Life advances a B3/S23 board one generation at a time. Bounded boards
// double-buffer two dense grids; unbounded boards keep only the live cells
// and rebuild the map each step from the active frontier.
type Life struct {
	cfg  Config
	seed []core.Point

	cur *core.DenseGrid
	nxt *core.DenseGrid

	sparse *core.SparseGrid

	gen    int
	births int
	deaths int
}

// New constructs a Life simulation from the provided configuration.
func New(cfg Config) (*Life, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("life window must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, errors.Errorf("density %v outside [0, 1]", cfg.Density)
	}
	l := &Life{cfg: cfg}
	if cfg.Pattern != "" {
		pts, err := patterns.Load(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		l.seed = pts
	}
	if cfg.Infinite {
		l.sparse = core.NewSparseGrid()
		return l, nil
	}
	cur, err := core.NewDenseGrid(cfg.Width, cfg.Height, cfg.Edge)
	if err != nil {
		return nil, err
	}
	nxt, err := core.NewDenseGrid(cfg.Width, cfg.Height, cfg.Edge)
	if err != nil {
		return nil, err
	}
	l.cur, l.nxt = cur, nxt
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the seed window dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Generation returns the number of completed steps since the last reset.
func (l *Life) Generation() int { return l.gen }

// Grid exposes the current board.
func (l *Life) Grid() core.Grid {
	if l.cfg.Infinite {
		return l.sparse
	}
	return l.cur
}

// Churn reports the births and deaths of the most recent step.
func (l *Life) Churn() (births, deaths int) { return l.births, l.deaths }

// Parameters reports the effective settings for display.
func (l *Life) Parameters() []core.Parameter {
	params := []core.Parameter{{Key: "rules", Value: l.cfg.Rules.String()}}
	if !l.cfg.Infinite {
		params = append(params, core.Parameter{Key: "edge", Value: l.cfg.Edge.String()})
	}
	if l.cfg.Pattern != "" {
		params = append(params, core.Parameter{Key: "pattern", Value: l.cfg.Pattern})
	} else {
		params = append(params, core.Parameter{Key: "density", Value: strconv.FormatFloat(l.cfg.Density, 'g', -1, 64)})
	}
	return params
}

// Reset reseeds the board. A configured pattern is placed centered in the
// seed window; otherwise a random soup fills the window at the configured
// density.
func (l *Life) Reset(seed int64) {
	l.gen, l.births, l.deaths = 0, 0, 0
	if l.cfg.Infinite {
		l.sparse = core.NewSparseGrid()
	} else {
		l.cur.Clear()
		l.nxt.Clear()
	}
	ox, oy := l.origin()
	if l.seed != nil {
		for _, p := range patterns.CenterIn(l.seed, ox, oy, l.cfg.Width, l.cfg.Height) {
			l.Grid().Set(p.X, p.Y, 1)
		}
		return
	}
	rng := core.NewRNG(seed)
	if !l.cfg.Infinite {
		rng.FillDensity(l.cur.Cells(), l.cfg.Density)
		return
	}
	for y := 0; y < l.cfg.Height; y++ {
		for x := 0; x < l.cfg.Width; x++ {
			if rng.Chance(l.cfg.Density) {
				l.sparse.Set(ox+x, oy+y, 1)
			}
		}
	}
}

func (l *Life) origin() (int, int) {
	if l.cfg.Infinite {
		return l.cfg.OriginX, l.cfg.OriginY
	}
	return 0, 0
}

// Step advances the board by one generation. Every cell fate reads only the
// previous generation.
func (l *Life) Step() error {
	if l.cfg.Infinite {
		l.stepSparse()
	} else {
		l.stepDense()
	}
	l.gen++
	return nil
}

func (l *Life) stepDense() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	births, deaths := 0, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := core.LiveNeighbors(l.cur, x, y, l.cfg.Rules)
			idx := y*w + x
			alive := cur[idx] != 0
			next := (alive && (n == 2 || n == 3)) || (!alive && n == 3)
			if next {
				nxt[idx] = 1
				if !alive {
					births++
				}
			} else {
				nxt[idx] = 0
				if alive {
					deaths++
				}
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.births, l.deaths = births, deaths
}

func (l *Life) stepSparse() {
	// Only live cells and their neighbors can change, so neighbor counts are
	// accumulated instead of scanning any bounding box.
	counts := make(map[core.Point]int, l.sparse.Population()*4)
	l.sparse.Each(func(p core.Point, _ uint8) {
		for _, d := range l.cfg.Rules.Offsets() {
			counts[core.Point{X: p.X + d[0], Y: p.Y + d[1]}]++
		}
	})
	next := core.NewSparseGrid()
	births := 0
	popBefore := l.sparse.Population()
	for p, n := range counts {
		alive := l.sparse.Get(p.X, p.Y) != 0
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			next.Set(p.X, p.Y, 1)
			if !alive {
				births++
			}
		}
	}
	l.births = births
	l.deaths = popBefore + births - next.Population()
	l.sparse = next
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
