package core

import (
	"slices"
	"testing"
)

func TestRNGDeterministic(t *testing.T) {
	bufA := make([]uint8, 256)
	bufB := make([]uint8, 256)
	NewRNG(42).FillDensity(bufA, 0.25)
	NewRNG(42).FillDensity(bufB, 0.25)
	if !slices.Equal(bufA, bufB) {
		t.Fatal("same seed produced different fills")
	}
}

func TestFillDensityExtremes(t *testing.T) {
	r := NewRNG(7)
	buf := make([]uint8, 64)
	r.FillDensity(buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("density 0 produced live cell at %d", i)
		}
	}
	r.FillDensity(buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("density 1 left dead cell at %d", i)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) returned true")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) returned false")
		}
	}
}
