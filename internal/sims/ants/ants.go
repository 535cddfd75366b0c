// Package ants implements Langton's Ant with a configurable turn table.
package ants

import (
	"github.com/pkg/errors"

	"term-life/internal/core"
)

// Ant walks a single agent over the grid. Each step flips the color under
// the ant to the next table entry, turns by the entry for the color the ant
// stood on, and moves one cell forward.
type Ant struct {
	cfg    Config
	rights []bool

	grid    core.Grid
	pos     core.Point
	heading core.Heading
	start   core.Point

	gen    int
	births int
	deaths int
}

// ParseTurns validates a turn table: one letter per cell color, 'R' turning
// clockwise and 'L' counter-clockwise. The classic ant is "RL".
func ParseTurns(s string) ([]bool, error) {
	if len(s) < 2 {
		return nil, errors.Errorf("turn table %q needs at least two entries", s)
	}
	if len(s) > 256 {
		return nil, errors.Errorf("turn table %q exceeds the 256 cell colors", s)
	}
	rights := make([]bool, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'R', 'r':
			rights[i] = true
		case 'L', 'l':
		default:
			return nil, errors.Errorf("turn table %q: entry %d must be L or R", s, i)
		}
	}
	return rights, nil
}

// New constructs an Ant simulation from the provided configuration. The ant
// starts at the center of the window facing north.
func New(cfg Config) (*Ant, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("ant window must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	rights, err := ParseTurns(cfg.Turns)
	if err != nil {
		return nil, err
	}
	a := &Ant{cfg: cfg, rights: rights}
	if cfg.Infinite {
		a.grid = core.NewSparseGrid()
		a.start = core.Point{X: cfg.OriginX + cfg.Width/2, Y: cfg.OriginY + cfg.Height/2}
	} else {
		g, err := core.NewDenseGrid(cfg.Width, cfg.Height, cfg.Edge)
		if err != nil {
			return nil, err
		}
		a.grid = g
		a.start = core.Point{X: cfg.Width / 2, Y: cfg.Height / 2}
	}
	a.pos = a.start
	a.heading = core.North
	return a, nil
}

// Name returns the simulation identifier.
func (a *Ant) Name() string { return "ants" }

// Size returns the window dimensions.
func (a *Ant) Size() core.Size { return core.Size{W: a.cfg.Width, H: a.cfg.Height} }

// Generation returns the number of completed steps since the last reset.
func (a *Ant) Generation() int { return a.gen }

// Grid exposes the trail board.
func (a *Ant) Grid() core.Grid { return a.grid }

// Ant returns the agent's position and heading.
func (a *Ant) Ant() (core.Point, core.Heading) { return a.pos, a.heading }

// Churn reports the cell flips of the most recent step: darkening a white
// cell counts as a birth, wrapping a color back to white as a death.
func (a *Ant) Churn() (births, deaths int) { return a.births, a.deaths }

// Parameters reports the effective settings for display.
func (a *Ant) Parameters() []core.Parameter {
	params := []core.Parameter{{Key: "turns", Value: a.cfg.Turns}}
	if !a.cfg.Infinite {
		params = append(params, core.Parameter{Key: "edge", Value: a.grid.Edge().String()})
	}
	return params
}

// Reset clears the trail and returns the ant to its starting cell facing
// north. The seed is ignored: the walk is fully deterministic.
func (a *Ant) Reset(_ int64) {
	if a.cfg.Infinite {
		a.grid = core.NewSparseGrid()
	} else {
		a.grid.(*core.DenseGrid).Clear()
	}
	a.pos = a.start
	a.heading = core.North
	a.gen = 0
	a.births, a.deaths = 0, 0
}

// Step advances the ant by one move. The turn reads the pre-flip color.
// Under a strict edge a move off the board fails with ErrBoundary and the
// ant stays put.
func (a *Ant) Step() error {
	a.births, a.deaths = 0, 0
	c := a.grid.Get(a.pos.X, a.pos.Y)
	next := uint8((int(c) + 1) % len(a.rights))
	if err := a.grid.Set(a.pos.X, a.pos.Y, next); err != nil {
		return err
	}
	if next == 0 {
		a.deaths = 1
	} else if c == 0 {
		a.births = 1
	}
	if a.rights[c] {
		a.heading = a.heading.TurnRight()
	} else {
		a.heading = a.heading.TurnLeft()
	}
	dx, dy := a.heading.Delta()
	if err := a.move(dx, dy); err != nil {
		return err
	}
	a.gen++
	return nil
}

func (a *Ant) move(dx, dy int) error {
	nx, ny := a.pos.X+dx, a.pos.Y+dy
	w, h, bounded := a.grid.Bounds()
	if !bounded || (nx >= 0 && nx < w && ny >= 0 && ny < h) {
		a.pos = core.Point{X: nx, Y: ny}
		return nil
	}
	switch a.grid.Edge() {
	case core.EdgeWrap:
		a.pos = core.Point{X: (nx%w + w) % w, Y: (ny%h + h) % h}
	case core.EdgeStrict:
		return errors.Wrapf(core.ErrBoundary, "ant exited at (%d, %d)", nx, ny)
	default:
		// A dead edge clamps: the ant cannot leave the board.
	}
	return nil
}

func init() {
	core.Register("ants", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return New(c)
	})
}
