package core

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewDenseGridRejectsBadDimensions(t *testing.T) {
	for _, tc := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -3}} {
		if _, err := NewDenseGrid(tc[0], tc[1], EdgeDead); err == nil {
			t.Fatalf("NewDenseGrid(%d, %d) accepted invalid dimensions", tc[0], tc[1])
		}
	}
	g, err := NewDenseGrid(3, 2, EdgeDead)
	if err != nil {
		t.Fatalf("NewDenseGrid(3, 2) failed: %v", err)
	}
	if g.W != 3 || g.H != 2 || len(g.Cells()) != 6 {
		t.Fatalf("unexpected grid shape %dx%d len %d", g.W, g.H, len(g.Cells()))
	}
}

func TestDenseGridDeadEdge(t *testing.T) {
	g, _ := NewDenseGrid(4, 4, EdgeDead)
	if err := g.Set(0, 0, 1); err != nil {
		t.Fatalf("in-range Set failed: %v", err)
	}
	if got := g.Get(-1, 0); got != 0 {
		t.Fatalf("Get(-1, 0) = %d, want background", got)
	}
	if got := g.Get(4, 3); got != 0 {
		t.Fatalf("Get(4, 3) = %d, want background", got)
	}
	if err := g.Set(-1, 0, 1); err != nil {
		t.Fatalf("out-of-range Set under EdgeDead returned error: %v", err)
	}
	if g.Population() != 1 {
		t.Fatalf("dropped write changed population: %d", g.Population())
	}
}

func TestDenseGridWrapEdge(t *testing.T) {
	g, _ := NewDenseGrid(4, 4, EdgeWrap)
	if err := g.Set(-1, -1, 7); err != nil {
		t.Fatalf("wrapped Set failed: %v", err)
	}
	if got := g.Get(3, 3); got != 7 {
		t.Fatalf("Get(3, 3) = %d, want wrapped write 7", got)
	}
	if got := g.Get(7, 7); got != 7 {
		t.Fatalf("Get(7, 7) = %d, want wrap onto (3, 3)", got)
	}
}

func TestDenseGridStrictEdge(t *testing.T) {
	g, _ := NewDenseGrid(4, 4, EdgeStrict)
	err := g.Set(4, 0, 1)
	if !errors.Is(err, ErrBoundary) {
		t.Fatalf("out-of-range Set under EdgeStrict = %v, want ErrBoundary", err)
	}
	if g.Population() != 0 {
		t.Fatalf("rejected write changed population: %d", g.Population())
	}
	if got := g.Get(4, 0); got != 0 {
		t.Fatalf("strict Get(4, 0) = %d, want background", got)
	}
}

func TestSparseGridReleasesBackground(t *testing.T) {
	g := NewSparseGrid()
	for i := 0; i < 3; i++ {
		if err := g.Set(i*100, -i*100, 1); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if g.Population() != 3 {
		t.Fatalf("population = %d, want 3", g.Population())
	}
	if err := g.Set(100, -100, 0); err != nil {
		t.Fatalf("background Set failed: %v", err)
	}
	if g.Population() != 2 {
		t.Fatalf("background write kept its entry, population = %d", g.Population())
	}
	if got := g.Get(100, -100); got != 0 {
		t.Fatalf("released cell reads %d, want background", got)
	}
}

func TestParseEdgePolicy(t *testing.T) {
	for name, want := range map[string]EdgePolicy{"dead": EdgeDead, "wrap": EdgeWrap, "strict": EdgeStrict} {
		got, err := ParseEdgePolicy(name)
		if err != nil || got != want {
			t.Fatalf("ParseEdgePolicy(%q) = %v, %v", name, got, err)
		}
		if got.String() != name {
			t.Fatalf("String() round-trip of %q gave %q", name, got.String())
		}
	}
	if _, err := ParseEdgePolicy("bounce"); err == nil {
		t.Fatal("ParseEdgePolicy accepted unknown policy")
	}
}
