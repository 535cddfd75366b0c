// Package render turns cell snapshots into terminal frames, and into pixels
// for the optional desktop viewer.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"term-life/internal/core"
)

// Glyphs for the classic terminal presentation: a dot for live cells, a
// square for trail cells and a triangle pointing the way the ant faces.
const (
	LifeGlyph  = "●"
	TrailGlyph = "■"
)

var headingGlyphs = [4]string{"▲", "▶", "▼", "◀"}

// HeadingGlyph returns the marker for an agent facing h.
func HeadingGlyph(h core.Heading) string { return headingGlyphs[h%4] }

var (
	liveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	trailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	agentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// Marker identifies the ant inside a frame, in viewport-relative cells.
type Marker struct {
	X, Y    int
	Heading core.Heading
}

// Frame renders a row-major cell snapshot as terminal text, two characters
// per cell so the board reads roughly square. trail draws set cells as
// footprints rather than live organisms, whether or not the agent itself is
// in view. A non-nil marker is drawn on top of the cell it occupies.
func Frame(cells []uint8, w, h int, trail bool, marker *Marker) string {
	var b strings.Builder
	for y := 0; y < h; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < w; x++ {
			if marker != nil && marker.X == x && marker.Y == y {
				b.WriteString(agentStyle.Render(HeadingGlyph(marker.Heading)))
				b.WriteString(" ")
				continue
			}
			switch v := cells[y*w+x]; {
			case v == 0:
				b.WriteString("  ")
				continue
			case trail:
				b.WriteString(trailStyle.Render(TrailGlyph))
			default:
				b.WriteString(liveStyle.Render(LifeGlyph))
			}
			b.WriteString(" ")
		}
	}
	return b.String()
}
