// Package ui builds the text chrome around the board: the banner line, the
// status footer and the neighbor-count overlay.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"term-life/internal/core"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	footerStyle = lipgloss.NewStyle().Faint(true)
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// displayNames maps registry names to banner titles.
var displayNames = map[string]string{
	"life": "Conway's Game of Life",
	"ants": "Langton's Ant",
}

// Title builds the banner line above the board. Simulations that report a
// "rules" parameter get it echoed between the size and the offset.
func Title(sim core.Sim, vp core.Viewport, infinite bool, total int) string {
	name := displayNames[sim.Name()]
	if name == "" {
		name = sim.Name()
	}
	size := sim.Size()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %dx%d", name, size.W, size.H)
	if rules := parameter(sim, "rules"); rules != "" {
		fmt.Fprintf(&b, " - Rules: %s", rules)
	}
	fmt.Fprintf(&b, " - Offset: (%d, %d) - Infinite: %v - Gen: %d", vp.X, vp.Y, infinite, sim.Generation())
	if total > 0 {
		fmt.Fprintf(&b, " / %d", total)
	}
	return titleStyle.Render(b.String())
}

// Footer builds the status line under the board: pause state and parameters
// first, then the key help.
func Footer(sim core.Sim, paused bool) string {
	status := make([]string, 0, 4)
	if paused {
		status = append(status, pausedStyle.Render("paused"))
	}
	if reporter, ok := sim.(core.ParameterReporter); ok {
		for _, p := range reporter.Parameters() {
			status = append(status, p.Key+"="+p.Value)
		}
	}

	help := footerStyle.Render("space pause  n step  r reset  R reseed  o overlay  wasd/arrows pan  q quit")
	if len(status) == 0 {
		return help
	}
	return strings.Join(status, "  ") + "\n" + help
}

// ErrorLine formats a fatal simulation error for the closing screen.
func ErrorLine(err error) string {
	return errorStyle.Render("stopped: " + err.Error())
}

func parameter(sim core.Sim, key string) string {
	reporter, ok := sim.(core.ParameterReporter)
	if !ok {
		return ""
	}
	for _, p := range reporter.Parameters() {
		if p.Key == key {
			return p.Value
		}
	}
	return ""
}
