// Package patterns provides the plaintext cell-pattern codec and a small
// library of built-in seeds.
package patterns

import (
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"term-life/internal/core"
)

var presets = map[string]string{
	"block": `
OO
OO
`,
	"blinker": `
OOO
`,
	"toad": `
.OOO
OOO.
`,
	"beacon": `
OO..
OO..
..OO
..OO
`,
	"glider": `
.O.
..O
OOO
`,
	"rpentomino": `
.OO
OO.
.O.
`,
}

// Parse decodes the plaintext pattern format: one row per line, 'O' or '*'
// for live cells, '.' or ' ' for dead ones. Lines starting with '!' are
// comments. Coordinates are relative to the top-left corner of the pattern.
func Parse(s string) ([]core.Point, error) {
	var pts []core.Point
	y := 0
	started := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			if started {
				y++
			}
			continue
		}
		started = true
		for x := 0; x < len(line); x++ {
			switch line[x] {
			case 'O', 'o', '*':
				pts = append(pts, core.Point{X: x, Y: y})
			case '.', ' ':
			default:
				return nil, errors.Errorf("pattern row %d: unexpected %q", y, line[x])
			}
		}
		y++
	}
	if len(pts) == 0 {
		return nil, errors.New("pattern has no live cells")
	}
	return pts, nil
}

// Format renders pts as plaintext rows over their bounding box.
func Format(pts []core.Point) string {
	if len(pts) == 0 {
		return ""
	}
	minX, minY, w, h := box(pts)
	rows := make([][]byte, h)
	for i := range rows {
		rows[i] = []byte(strings.Repeat(".", w))
	}
	for _, p := range pts {
		rows[p.Y-minY][p.X-minX] = 'O'
	}
	var b strings.Builder
	for _, row := range rows {
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

// Bounds returns the width and height of the bounding box enclosing pts.
func Bounds(pts []core.Point) (w, h int) {
	if len(pts) == 0 {
		return 0, 0
	}
	_, _, w, h = box(pts)
	return w, h
}

func box(pts []core.Point) (minX, minY, w, h int) {
	minX, minY = pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return minX, minY, maxX - minX + 1, maxY - minY + 1
}

// Offset returns a copy of pts translated by (dx, dy).
func Offset(pts []core.Point, dx, dy int) []core.Point {
	out := make([]core.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(dx, dy)
	}
	return out
}

// CenterIn returns pts translated so their bounding box sits centered in the
// w-by-h window anchored at (x, y).
func CenterIn(pts []core.Point, x, y, w, h int) []core.Point {
	minX, minY, pw, ph := box(pts)
	return Offset(pts, x+(w-pw)/2-minX, y+(h-ph)/2-minY)
}

// Preset returns a named built-in pattern.
func Preset(name string) ([]core.Point, bool) {
	src, ok := presets[name]
	if !ok {
		return nil, false
	}
	pts, err := Parse(src)
	if err != nil {
		return nil, false
	}
	return pts, true
}

// Names returns the built-in pattern names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load resolves a pattern argument: a built-in name first, then a file path.
func Load(arg string) ([]core.Point, error) {
	if pts, ok := Preset(arg); ok {
		return pts, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern %q is not built in and could not be read", arg)
	}
	pts, err := Parse(string(data))
	return pts, errors.Wrapf(err, "pattern file %s", arg)
}
