package core

import "testing"

func TestLiveNeighborsMoore(t *testing.T) {
	g, _ := NewDenseGrid(5, 5, EdgeDead)
	offsets := Moore.Offsets()
	if len(offsets) != 8 {
		t.Fatalf("moore offsets = %d, want 8", len(offsets))
	}
	for k := 0; k <= 8; k++ {
		g.Clear()
		for i := 0; i < k; i++ {
			g.Set(2+offsets[i][0], 2+offsets[i][1], 1)
		}
		if got := LiveNeighbors(g, 2, 2, Moore); got != k {
			t.Fatalf("moore count with %d neighbors = %d", k, got)
		}
	}
}

func TestLiveNeighborsVonNeumann(t *testing.T) {
	g, _ := NewDenseGrid(5, 5, EdgeDead)
	offsets := VonNeumann.Offsets()
	if len(offsets) != 4 {
		t.Fatalf("von neumann offsets = %d, want 4", len(offsets))
	}
	for k := 0; k <= 4; k++ {
		g.Clear()
		for i := 0; i < k; i++ {
			g.Set(2+offsets[i][0], 2+offsets[i][1], 1)
		}
		if got := LiveNeighbors(g, 2, 2, VonNeumann); got != k {
			t.Fatalf("von neumann count with %d neighbors = %d", k, got)
		}
	}
	// Diagonals never count.
	g.Clear()
	g.Set(1, 1, 1)
	g.Set(3, 3, 1)
	if got := LiveNeighbors(g, 2, 2, VonNeumann); got != 0 {
		t.Fatalf("diagonal cells counted: %d", got)
	}
}

func TestLiveNeighborsEdges(t *testing.T) {
	dead, _ := NewDenseGrid(3, 3, EdgeDead)
	wrap, _ := NewDenseGrid(3, 3, EdgeWrap)
	for _, g := range []*DenseGrid{dead, wrap} {
		g.Set(0, 0, 1)
		g.Set(2, 2, 1)
	}
	// Under a dead border (0, 0) and (2, 2) are far apart.
	if got := LiveNeighbors(dead, 0, 0, Moore); got != 0 {
		t.Fatalf("dead border corner count = %d, want 0", got)
	}
	// On a 3x3 torus they are diagonal neighbors.
	if got := LiveNeighbors(wrap, 0, 0, Moore); got != 1 {
		t.Fatalf("toroidal corner count = %d, want 1", got)
	}
	if got := LiveNeighbors(wrap, 0, 0, VonNeumann); got != 0 {
		t.Fatalf("toroidal orthogonal corner count = %d, want 0", got)
	}
}

func TestParseNeighborhood(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Neighborhood
	}{
		{"moore", Moore},
		{"van_neumann", VonNeumann},
		{"von_neumann", VonNeumann},
	} {
		got, err := ParseNeighborhood(tc.in)
		if err != nil || got != tc.want {
			t.Fatalf("ParseNeighborhood(%q) = %v, %v", tc.in, got, err)
		}
	}
	if _, err := ParseNeighborhood("hexagonal"); err == nil {
		t.Fatal("ParseNeighborhood accepted unknown rules")
	}
}
