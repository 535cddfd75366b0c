// Package app wires configuration, simulations and the terminal UI into a
// runnable program.
package app

import (
	_ "embed"
	"flag"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"term-life/internal/core"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every runtime setting shared by the terminal UI, the
// headless tracer and the desktop viewer.
type Config struct {
	Mode        string  `yaml:"mode"`
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Infinite    bool    `yaml:"infinite"`
	Generations int     `yaml:"generations"`
	Rules       string  `yaml:"rules"`
	Edge        string  `yaml:"edge"`
	OffsetX     int     `yaml:"offset_x"`
	OffsetY     int     `yaml:"offset_y"`
	RPS         int     `yaml:"rps"`
	Seed        int64   `yaml:"seed"`
	Density     float64 `yaml:"density"`
	Pattern     string  `yaml:"pattern"`
	Turns       string  `yaml:"turns"`
	TraceOut    string  `yaml:"trace_out"`

	// File is the optional -config path, never serialized itself.
	File string `yaml:"-"`
}

// NewConfig returns the embedded defaults. The embedded file is fixed at
// compile time, so a parse failure is a build defect and panics.
func NewConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultsYAML, &c); err != nil {
		panic(errors.Wrap(err, "parsing embedded defaults"))
	}
	return c
}

// Bind registers the command line flags on fs, defaulting to the current
// values. Single-letter aliases mirror the long names.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Mode, "mode", c.Mode, "simulation to run: "+strings.Join(modeNames(), " or "))
	fs.StringVar(&c.Mode, "m", c.Mode, "shorthand for -mode")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells, 0 fits the terminal")
	fs.IntVar(&c.Width, "w", c.Width, "shorthand for -width")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells, 0 fits the terminal")
	fs.IntVar(&c.Height, "h", c.Height, "shorthand for -height")
	fs.BoolVar(&c.Infinite, "infinite", c.Infinite, "run on an unbounded board")
	fs.BoolVar(&c.Infinite, "i", c.Infinite, "shorthand for -infinite")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations, 0 runs forever")
	fs.IntVar(&c.Generations, "g", c.Generations, "shorthand for -generations")
	fs.StringVar(&c.Rules, "rules", c.Rules, "neighborhood for life: moore or van_neumann")
	fs.StringVar(&c.Rules, "r", c.Rules, "shorthand for -rules")
	fs.StringVar(&c.Edge, "edge", c.Edge, "boundary behavior: dead, wrap or strict (empty picks the mode default)")
	fs.IntVar(&c.OffsetX, "offset-x", c.OffsetX, "initial view offset, x")
	fs.IntVar(&c.OffsetX, "x", c.OffsetX, "shorthand for -offset-x")
	fs.IntVar(&c.OffsetY, "offset-y", c.OffsetY, "initial view offset, y")
	fs.IntVar(&c.OffsetY, "y", c.OffsetY, "shorthand for -offset-y")
	fs.IntVar(&c.RPS, "rps", c.RPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed, 0 draws one from the clock")
	fs.Float64Var(&c.Density, "density", c.Density, "random fill density for life")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "seed pattern: a preset name or a plaintext file")
	fs.StringVar(&c.Pattern, "p", c.Pattern, "shorthand for -pattern")
	fs.StringVar(&c.Turns, "turns", c.Turns, "ant turn table, one R or L per cell color")
	fs.StringVar(&c.TraceOut, "trace-out", c.TraceOut, "directory for the census CSV, empty disables tracing")
	fs.StringVar(&c.File, "config", c.File, "YAML config file layered under the flags")
}

// LoadFile overlays settings from the -config file onto c, skipping every
// field the user pinned on the command line.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return errors.Wrap(err, "reading config file")
	}
	file := NewConfig()
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrapf(err, "parsing %s", c.File)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	pinned := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if !pinned("mode", "m") {
		c.Mode = file.Mode
	}
	if !pinned("width", "w") {
		c.Width = file.Width
	}
	if !pinned("height", "h") {
		c.Height = file.Height
	}
	if !pinned("infinite", "i") {
		c.Infinite = file.Infinite
	}
	if !pinned("generations", "g") {
		c.Generations = file.Generations
	}
	if !pinned("rules", "r") {
		c.Rules = file.Rules
	}
	if !pinned("edge") {
		c.Edge = file.Edge
	}
	if !pinned("offset-x", "x") {
		c.OffsetX = file.OffsetX
	}
	if !pinned("offset-y", "y") {
		c.OffsetY = file.OffsetY
	}
	if !pinned("rps") {
		c.RPS = file.RPS
	}
	if !pinned("seed") {
		c.Seed = file.Seed
	}
	if !pinned("density") {
		c.Density = file.Density
	}
	if !pinned("pattern", "p") {
		c.Pattern = file.Pattern
	}
	if !pinned("turns") {
		c.Turns = file.Turns
	}
	if !pinned("trace-out") {
		c.TraceOut = file.TraceOut
	}
	return nil
}

// FitTerminal fills unset dimensions from the terminal. Frames draw two
// characters per cell and reserve rows for the chrome, so the board gets
// half the terminal height on each axis, like the classic presentation.
func (c *Config) FitTerminal() {
	if c.Width > 0 && c.Height > 0 {
		return
	}
	rows := 40
	if _, r, err := term.GetSize(int(os.Stdout.Fd())); err == nil && r > 8 {
		rows = r
	}
	base := rows / 2
	if c.Width <= 0 {
		c.Width = base
	}
	if c.Height <= 0 {
		c.Height = base - 2
	}
}

// Validate checks cross-field constraints before any simulation is built.
func (c *Config) Validate() error {
	if _, ok := core.Sims()[c.Mode]; !ok {
		return errors.Errorf("unknown mode %q, have %s", c.Mode, strings.Join(modeNames(), ", "))
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if c.RPS <= 0 || c.RPS > 240 {
		return errors.Errorf("rps %d outside 1..240", c.RPS)
	}
	if _, err := core.ParseNeighborhood(c.Rules); err != nil {
		return err
	}
	if c.Edge != "" {
		if _, err := core.ParseEdgePolicy(c.Edge); err != nil {
			return err
		}
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density %g outside 0..1", c.Density)
	}
	return nil
}

// SimConfig flattens the settings into the key/value form the simulation
// factories take. Only the keys the selected mode understands are emitted.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"infinite": strconv.FormatBool(c.Infinite),
		"x":        strconv.Itoa(c.OffsetX),
		"y":        strconv.Itoa(c.OffsetY),
	}
	switch c.Mode {
	case "ants":
		m["turns"] = c.Turns
		m["edge"] = c.edgeOr("wrap")
	default:
		m["rules"] = c.Rules
		m["edge"] = c.edgeOr("dead")
		m["density"] = strconv.FormatFloat(c.Density, 'g', -1, 64)
		if c.Pattern != "" {
			m["pattern"] = c.Pattern
		}
	}
	return m
}

// EffectiveSeed resolves the seed once, drawing from the clock when unset.
func (c *Config) EffectiveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

func (c *Config) edgeOr(def string) string {
	if c.Edge == "" {
		return def
	}
	return c.Edge
}

func modeNames() []string {
	names := make([]string, 0, len(core.Sims()))
	for name := range core.Sims() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
