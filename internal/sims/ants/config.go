package ants

import (
	"strconv"

	"github.com/pkg/errors"

	"term-life/internal/core"
)

// Config controls how a Langton's Ant simulation is constructed.
type Config struct {
	Width    int
	Height   int
	Infinite bool
	Edge     core.EdgePolicy
	Turns    string

	// Start window origin, used only by unbounded boards.
	OriginX int
	OriginY int
}

// DefaultConfig returns the standard configuration: a bounded 40x20 board
// with a toroidal edge and the classic two-color turn table.
func DefaultConfig() Config {
	return Config{
		Width:  40,
		Height: 20,
		Edge:   core.EdgeWrap,
		Turns:  "RL",
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
	if v, ok := cfg["edge"]; ok {
		parsed, err := core.ParseEdgePolicy(v)
		if err != nil {
			return c, err
		}
		c.Edge = parsed
	}
	if v, ok := cfg["turns"]; ok {
		c.Turns = v
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
