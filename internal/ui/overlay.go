package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"term-life/internal/core"
)

var (
	dieStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bornStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	calmStyle = lipgloss.NewStyle().Faint(true)
)

// NeighborOverlay renders live-neighbor counts for the viewport in place of
// the cells: red where a live cell is about to die, green where a dead cell
// is about to be born, faint everywhere else.
func NeighborOverlay(g core.Grid, vp core.Viewport, rules core.Neighborhood) string {
	var b strings.Builder
	for y := 0; y < vp.H; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < vp.W; x++ {
			gx, gy := vp.X+x, vp.Y+y
			n := core.LiveNeighbors(g, gx, gy, rules)
			alive := g.Get(gx, gy) != 0
			digit := strconv.Itoa(n)
			switch {
			case alive && (n < 2 || n > 3):
				b.WriteString(dieStyle.Render(digit))
			case !alive && n == 3:
				b.WriteString(bornStyle.Render(digit))
			default:
				b.WriteString(calmStyle.Render(digit))
			}
			b.WriteString(" ")
		}
	}
	return b.String()
}
