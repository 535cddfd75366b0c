package life

import (
	"strconv"

	"github.com/pkg/errors"

	"term-life/internal/core"
)

// Config controls how a Life simulation is constructed.
type Config struct {
	Width    int
	Height   int
	Infinite bool
	Rules    core.Neighborhood
	Edge     core.EdgePolicy
	Density  float64
	Pattern  string

	// Seed window origin, used only by unbounded boards.
	OriginX int
	OriginY int
}

// DefaultConfig returns the standard configuration: a bounded 40x20 board
// with Moore rules, a dead border and a quarter-density random soup.
func DefaultConfig() Config {
	return Config{
		Width:   40,
		Height:  20,
		Rules:   core.Moore,
		Edge:    core.EdgeDead,
		Density: 0.25,
	}
}

// FromMap overlays values parsed from a flag-style key/value map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "width %q", v)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "height %q", v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["infinite"]; ok {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return c, errors.Wrapf(err, "infinite %q", v)
		}
		c.Infinite = parsed
	}
	if v, ok := cfg["rules"]; ok {
		parsed, err := core.ParseNeighborhood(v)
		if err != nil {
			return c, err
		}
		c.Rules = parsed
	}
	if v, ok := cfg["edge"]; ok {
		parsed, err := core.ParseEdgePolicy(v)
		if err != nil {
			return c, err
		}
		c.Edge = parsed
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(err, "density %q", v)
		}
		c.Density = parsed
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["x"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "origin x %q", v)
		}
		c.OriginX = parsed
	}
	if v, ok := cfg["y"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "origin y %q", v)
		}
		c.OriginY = parsed
	}
	return c, nil
}
