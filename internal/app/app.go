package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"k8s.io/klog/v2"

	"term-life/internal/core"
	"term-life/internal/render"
	"term-life/internal/trace"
	"term-life/internal/ui"
)

// TickMsg asks the model to advance one generation.
type TickMsg time.Time

// Model drives the terminal UI. It owns the simulation, the viewport and
// the playback state, and translates key presses into panning and control.
type Model struct {
	cfg   Config
	sim   core.Sim
	rules core.Neighborhood
	vp    core.Viewport
	seed  int64
	total int
	rec   *trace.Recorder

	termW, termH int
	paused       bool
	overlay      bool
	err          error
}

// NewModel assembles the UI around a constructed simulation, rejecting
// configurations whose rules name does not parse. rec may be nil to disable
// tracing.
func NewModel(cfg Config, sim core.Sim, seed int64, rec *trace.Recorder) (Model, error) {
	rules, err := core.ParseNeighborhood(cfg.Rules)
	if err != nil {
		return Model{}, err
	}
	return Model{
		cfg:   cfg,
		sim:   sim,
		rules: rules,
		vp:    core.Viewport{X: cfg.OffsetX, Y: cfg.OffsetY, W: cfg.Width, H: cfg.Height},
		seed:  seed,
		total: cfg.Generations,
		rec:   rec,
	}, nil
}

// Err reports the error that stopped the run, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.RPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.paused {
			if done := m.advance(); done {
				return m, tea.Quit
			}
		}
		return m, m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.fitViewport()
		return m, nil
	}
	return m, nil
}

func (m *Model) advance() bool {
	if err := m.sim.Step(); err != nil {
		m.err = err
		return true
	}
	if m.rec != nil {
		m.rec.Observe(m.sim)
	}
	return m.total > 0 && m.sim.Generation() >= m.total
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "n":
		if m.paused {
			if done := m.advance(); done {
				return m, tea.Quit
			}
		}
	case "r":
		m.sim.Reset(m.seed)
	case "R":
		m.seed = time.Now().UnixNano()
		m.sim.Reset(m.seed)
	case "o":
		m.overlay = !m.overlay
	case "w", "up":
		m.vp.Pan(0, -1)
	case "s", "down":
		m.vp.Pan(0, 1)
	case "a", "left":
		m.vp.Pan(-1, 0)
	case "d", "right":
		m.vp.Pan(1, 0)
	}
	return m, nil
}

// fitViewport clamps the visible window to the terminal. The board itself
// keeps its configured size; panning reaches the rest.
func (m *Model) fitViewport() {
	w, h := m.cfg.Width, m.cfg.Height
	if m.termW > 1 && m.termW/2 < w {
		w = m.termW / 2
	}
	if m.termH > 4 && m.termH-4 < h {
		h = m.termH - 4
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	m.vp.W, m.vp.H = w, h
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(ui.Title(m.sim, m.vp, m.cfg.Infinite, m.total))
	b.WriteString("\n")
	if m.overlay {
		b.WriteString(ui.NeighborOverlay(m.sim.Grid(), m.vp, m.rules))
	} else {
		cells := m.vp.Snapshot(m.sim.Grid(), nil)
		_, trail := m.sim.(core.AntProvider)
		b.WriteString(render.Frame(cells, m.vp.W, m.vp.H, trail, m.marker()))
	}
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(ui.ErrorLine(m.err))
		b.WriteString("\n")
	}
	b.WriteString(ui.Footer(m.sim, m.paused))
	return b.String()
}

// marker locates the ant inside the viewport, nil when the simulation has
// no ant or it sits outside the visible window.
func (m Model) marker() *render.Marker {
	provider, ok := m.sim.(core.AntProvider)
	if !ok {
		return nil
	}
	pos, heading := provider.Ant()
	if !m.vp.Contains(pos) {
		return nil
	}
	return &render.Marker{X: pos.X - m.vp.X, Y: pos.Y - m.vp.Y, Heading: heading}
}

// Run drives the terminal UI to completion.
func Run(cfg Config, sim core.Sim, seed int64, rec *trace.Recorder) error {
	klog.V(1).Infof("starting %s, %dx%d, seed %d", sim.Name(), cfg.Width, cfg.Height, seed)
	m, err := NewModel(cfg, sim, seed, rec)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
