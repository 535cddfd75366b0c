package trace

import (
	"os"
	"strings"
	"testing"
	"time"

	"term-life/internal/core"
)

type scriptedSim struct {
	gen    int
	grid   *core.SparseGrid
	pops   []int
	births []int
	deaths []int
	pos    core.Point
}

func newScriptedSim(pops, births, deaths []int) *scriptedSim {
	return &scriptedSim{grid: core.NewSparseGrid(), pops: pops, births: births, deaths: deaths}
}

func (s *scriptedSim) Name() string     { return "scripted" }
func (s *scriptedSim) Size() core.Size  { return core.Size{} }
func (s *scriptedSim) Reset(seed int64) { s.gen = 0 }
func (s *scriptedSim) Generation() int  { return s.gen }
func (s *scriptedSim) Grid() core.Grid  { return s.grid }

func (s *scriptedSim) Step() error {
	s.grid = core.NewSparseGrid()
	for i := 0; i < s.pops[s.gen]; i++ {
		s.grid.Set(i, 0, 1)
	}
	s.gen++
	s.pos = core.Point{X: s.gen, Y: -s.gen}
	return nil
}

func (s *scriptedSim) Churn() (int, int) {
	return s.births[s.gen-1], s.deaths[s.gen-1]
}

func (s *scriptedSim) Ant() (core.Point, core.Heading) {
	return s.pos, core.East
}

func TestRecorderCensus(t *testing.T) {
	sim := newScriptedSim([]int{3, 5, 4}, []int{3, 2, 1}, []int{0, 0, 2})
	rec := NewRecorder()
	for i := 0; i < 3; i++ {
		if err := sim.Step(); err != nil {
			t.Fatal(err)
		}
		rec.Observe(sim)
	}

	rows := rec.Rows()
	if len(rows) != 3 {
		t.Fatalf("recorded %d rows, want 3", len(rows))
	}
	if rows[1].Generation != 2 || rows[1].Population != 5 || rows[1].Births != 2 {
		t.Fatalf("row 1 = %+v", rows[1])
	}
	if rows[2].AntX != 3 || rows[2].AntY != -3 || rows[2].Heading != "east" {
		t.Fatalf("row 2 ant fields = %+v", rows[2])
	}

	sum := rec.Summarize()
	if sum.Generations != 3 || sum.MinPop != 3 || sum.MaxPop != 5 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.MeanPop != 4 || sum.Births != 6 || sum.Deaths != 2 {
		t.Fatalf("summary totals = %+v", sum)
	}
}

func TestWriteCSV(t *testing.T) {
	sim := newScriptedSim([]int{2, 2}, []int{2, 0}, []int{0, 0})
	rec := NewRecorder()
	for i := 0; i < 2; i++ {
		if err := sim.Step(); err != nil {
			t.Fatal(err)
		}
		rec.Observe(sim)
	}

	dir := t.TempDir()
	start := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)
	path, err := rec.WriteCSV(dir, "scripted", start)
	if err != nil {
		t.Fatal(err)
	}
	if want := "scripted-20240517-093000.csv"; !strings.HasSuffix(path, want) {
		t.Fatalf("path = %q, want suffix %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want header plus 2 rows:\n%s", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "generation,population,births,deaths") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,2,2,0") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
}

func TestEmptySummary(t *testing.T) {
	sum := NewRecorder().Summarize()
	if sum.Generations != 0 || sum.MinPop != 0 || sum.MeanPop != 0 {
		t.Fatalf("empty summary = %+v", sum)
	}
}
