// Package trace records a per-generation census of a running simulation and
// writes it out as CSV for offline analysis.
package trace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"term-life/internal/core"
)

// Row is one generation's census. The ant columns stay empty for
// simulations without an ant.
type Row struct {
	Generation int    `csv:"generation"`
	Population int    `csv:"population"`
	Births     int    `csv:"births"`
	Deaths     int    `csv:"deaths"`
	AntX       int    `csv:"ant_x"`
	AntY       int    `csv:"ant_y"`
	Heading    string `csv:"heading"`
}

// Recorder accumulates census rows over a run.
type Recorder struct {
	rows []Row
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Observe appends a row for the simulation's current generation. Churn and
// ant position come from optional interfaces, so any registered simulation
// can be traced.
func (r *Recorder) Observe(sim core.Sim) {
	row := Row{
		Generation: sim.Generation(),
		Population: sim.Grid().Population(),
	}
	if churn, ok := sim.(core.ChurnReporter); ok {
		row.Births, row.Deaths = churn.Churn()
	}
	if provider, ok := sim.(core.AntProvider); ok {
		pos, heading := provider.Ant()
		row.AntX, row.AntY = pos.X, pos.Y
		row.Heading = heading.String()
	}
	r.rows = append(r.rows, row)
}

// Rows exposes the collected census.
func (r *Recorder) Rows() []Row { return r.rows }

// WriteCSV saves the census under dir, named after the simulation and the
// start of the run, and returns the path written.
func (r *Recorder) WriteCSV(dir, simName string, startedAt time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating trace directory")
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", simName, startedAt.Format("20060102-150405")))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating trace file")
	}
	defer f.Close()
	if err := gocsv.Marshal(&r.rows, f); err != nil {
		return "", errors.Wrapf(err, "writing census to %s", path)
	}
	klog.V(1).Infof("wrote %d census rows to %s", len(r.rows), path)
	return path, nil
}

// Summary condenses a census for the end-of-run report.
type Summary struct {
	Generations int
	MinPop      int
	MaxPop      int
	MeanPop     float64
	Births      int
	Deaths      int
}

// Summarize folds the collected rows into a Summary.
func (r *Recorder) Summarize() Summary {
	var s Summary
	s.Generations = len(r.rows)
	if s.Generations == 0 {
		return s
	}
	s.MinPop = r.rows[0].Population
	total := 0
	for _, row := range r.rows {
		if row.Population < s.MinPop {
			s.MinPop = row.Population
		}
		if row.Population > s.MaxPop {
			s.MaxPop = row.Population
		}
		total += row.Population
		s.Births += row.Births
		s.Deaths += row.Deaths
	}
	s.MeanPop = float64(total) / float64(s.Generations)
	return s
}
