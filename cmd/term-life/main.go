// Command term-life runs cellular automata in the terminal: Conway's Game
// of Life and Langton's Ant, on bounded or unbounded boards.
package main

import (
	"flag"
	"time"

	"k8s.io/klog/v2"

	"term-life/internal/app"
	"term-life/internal/core"
	_ "term-life/internal/sims/ants"
	_ "term-life/internal/sims/life"
	"term-life/internal/trace"
)

func main() {
	klog.InitFlags(nil)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
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

	var rec *trace.Recorder
	if cfg.TraceOut != "" {
		rec = trace.NewRecorder()
	}
	start := time.Now()
	runErr := app.Run(cfg, sim, seed, rec)
	if rec != nil {
		path, err := rec.WriteCSV(cfg.TraceOut, sim.Name(), start)
		if err != nil {
			klog.Errorf("trace: %v", err)
		} else {
			klog.Infof("census written to %s", path)
		}
	}
	if runErr != nil {
		klog.Fatalf("%s stopped: %v", sim.Name(), runErr)
	}
}
