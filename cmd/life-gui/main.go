//go:build ebiten

// Command life-gui runs the same simulations in a desktop window.
package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"k8s.io/klog/v2"

	"term-life/internal/app"
	"term-life/internal/core"
	_ "term-life/internal/sims/ants"
	_ "term-life/internal/sims/life"
)

func main() {
	klog.InitFlags(nil)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	scale := flag.Int("scale", 8, "pixels per cell")
	flag.Parse()

	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		klog.Fatalf("config: %v", err)
	}
	cfg.FitTerminal()
	if err := cfg.Validate(); err != nil {
		klog.Fatalf("config: %v", err)
	}

	factory := core.Sims()[cfg.Mode]
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		klog.Fatalf("building %s: %v", cfg.Mode, err)
	}
	seed := cfg.EffectiveSeed()
	sim.Reset(seed)

	game := app.NewGame(cfg, sim, seed, *scale)

	ebiten.SetWindowTitle("term-life: " + sim.Name())
	ebiten.SetWindowSize(cfg.Width*(*scale), cfg.Height*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		klog.Fatalf("%s stopped: %v", sim.Name(), err)
	}
}
