//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"term-life/internal/core"
	"term-life/internal/render"
)

// Game adapts a simulation to the ebiten.Game interface for the desktop
// viewer. The window shows the viewport, not the whole board, so panning
// works the same as in the terminal UI.
type Game struct {
	sim     core.Sim
	vp      core.Viewport
	painter *render.GridPainter
	pacer   *core.FixedStep
	palette []color.RGBA
	buf     []uint8

	scale    int
	seed     int64
	total    int
	paused   bool
	tickOnce bool
}

var antMarkerColor = color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}

// NewGame constructs the viewer around a constructed simulation.
func NewGame(cfg Config, sim core.Sim, seed int64, scale int) *Game {
	if scale <= 0 {
		scale = 8
	}
	palette := []color.RGBA{{A: 0xff}, {R: 0xff, G: 0xff, B: 0xff, A: 0xff}}
	if _, ok := sim.(core.AntProvider); ok {
		palette = trailPalette(len(cfg.Turns))
	}
	return &Game{
		sim:     sim,
		vp:      core.Viewport{X: cfg.OffsetX, Y: cfg.OffsetY, W: cfg.Width, H: cfg.Height},
		painter: render.NewGridPainter(cfg.Width, cfg.Height),
		pacer:   core.NewFixedStep(cfg.RPS),
		palette: palette,
		scale:   scale,
		seed:    seed,
		total:   cfg.Generations,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation at the
// configured rate, independent of the display frame rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.vp.Pan(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.vp.Pan(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.vp.Pan(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.vp.Pan(0, 1)
	}

	steps := g.pacer.Due()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		if err := g.sim.Step(); err != nil {
			return err
		}
		if g.total > 0 && g.sim.Generation() >= g.total {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the viewport and the ant marker when one is visible.
func (g *Game) Draw(screen *ebiten.Image) {
	g.buf = g.vp.Snapshot(g.sim.Grid(), g.buf)
	g.painter.Blit(screen, g.buf, g.palette, g.scale)

	if provider, ok := g.sim.(core.AntProvider); ok {
		pos, _ := provider.Ant()
		if g.vp.Contains(pos) {
			g.painter.MarkCell(screen, pos.X-g.vp.X, pos.Y-g.vp.Y, antMarkerColor, g.scale)
		}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.vp.W * g.scale, g.vp.H * g.scale
}

// trailPalette builds a background plus one color per trail value.
func trailPalette(colors int) []color.RGBA {
	cycle := []color.RGBA{
		{R: 0x5f, G: 0x87, B: 0xd7, A: 0xff},
		{R: 0xaf, G: 0x5f, B: 0xd7, A: 0xff},
		{R: 0x5f, G: 0xd7, B: 0xaf, A: 0xff},
	}
	if colors < 2 {
		colors = 2
	}
	palette := make([]color.RGBA, 0, colors)
	palette = append(palette, color.RGBA{A: 0xff})
	for i := 1; i < colors; i++ {
		palette = append(palette, cycle[(i-1)%len(cycle)])
	}
	return palette
}
