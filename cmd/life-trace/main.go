// Command life-trace runs simulations headless and reports a census: one
// CSV per run plus a summary line, for studying rules away from the UI.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"term-life/internal/app"
	"term-life/internal/core"
	_ "term-life/internal/sims/ants"
	_ "term-life/internal/sims/life"
	"term-life/internal/trace"
)

type runResult struct {
	seed    int64
	summary trace.Summary
	path    string
	err     error
}

func main() {
	klog.InitFlags(nil)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	runs := flag.Int("runs", 1, "number of consecutive seeds to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "concurrent runs")
	flag.Parse()

	if err := cfg.LoadFile(flag.CommandLine); err != nil {
		klog.Fatalf("config: %v", err)
	}
	cfg.FitTerminal()
	if err := cfg.Validate(); err != nil {
		klog.Fatalf("config: %v", err)
	}
	if *runs < 1 || *workers < 1 {
		klog.Fatalf("runs and workers must be positive, got %d and %d", *runs, *workers)
	}
	gens := cfg.Generations
	if gens <= 0 {
		gens = 1000
	}

	factory := core.Sims()[cfg.Mode]
	baseSeed := cfg.EffectiveSeed()

	results := make([]runResult, *runs)
	var g errgroup.Group
	g.SetLimit(*workers)
	start := time.Now()
	for i := 0; i < *runs; i++ {
		g.Go(func() error {
			results[i] = runOnce(cfg, factory, baseSeed+int64(i), gens)
			return results[i].err
		})
	}
	if err := g.Wait(); err != nil {
		klog.Warningf("at least one run stopped early: %v", err)
	}
	elapsed := time.Since(start)

	fmt.Printf("%s: %d run(s), up to %d generations each, %s elapsed\n",
		cfg.Mode, *runs, gens, elapsed.Round(time.Millisecond))
	total := 0
	for _, res := range results {
		total += res.summary.Generations
		if res.err != nil && res.summary.Generations == 0 {
			fmt.Printf("  seed %-8d failed: %v\n", res.seed, res.err)
			continue
		}
		line := fmt.Sprintf("  seed %-8d gens %-5d pop min %d max %d mean %.1f births %d deaths %d",
			res.seed, res.summary.Generations, res.summary.MinPop, res.summary.MaxPop,
			res.summary.MeanPop, res.summary.Births, res.summary.Deaths)
		if res.err != nil {
			line += fmt.Sprintf(" (stopped: %v)", res.err)
		}
		if res.path != "" {
			line += " -> " + res.path
		}
		fmt.Println(line)
	}
	if elapsed > 0 {
		fmt.Printf("throughput %.0f generations/s\n", float64(total)/elapsed.Seconds())
	}
}

func runOnce(cfg app.Config, factory core.Factory, seed int64, gens int) runResult {
	res := runResult{seed: seed}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		res.err = err
		return res
	}
	sim.Reset(seed)

	rec := trace.NewRecorder()
	for i := 0; i < gens; i++ {
		if err := sim.Step(); err != nil {
			res.err = err
			break
		}
		rec.Observe(sim)
	}
	res.summary = rec.Summarize()

	if cfg.TraceOut != "" {
		name := fmt.Sprintf("%s-seed%d", sim.Name(), seed)
		path, err := rec.WriteCSV(cfg.TraceOut, name, time.Now())
		if err != nil {
			klog.Errorf("trace for seed %d: %v", seed, err)
		} else {
			res.path = path
		}
	}
	return res
}
