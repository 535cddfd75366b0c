package core

import "github.com/pkg/errors"

// Neighborhood selects which cells count as adjacent.
type Neighborhood uint8

const (
	// Moore counts all eight surrounding cells.
	Moore Neighborhood = iota
	// VonNeumann counts only the four orthogonal cells.
	VonNeumann
)

var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var vonNeumannOffsets = [4][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// ParseNeighborhood maps a rules name to a Neighborhood. The historical
// "van_neumann" spelling is accepted alongside the standard one.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch s {
	case "moore":
		return Moore, nil
	case "van_neumann", "von_neumann":
		return VonNeumann, nil
	}
	return Moore, errors.Errorf("unknown rules %q (want moore or van_neumann)", s)
}

// String returns the rules name used in configuration and titles.
func (n Neighborhood) String() string {
	if n == VonNeumann {
		return "van_neumann"
	}
	return "moore"
}

// Offsets returns the relative coordinates of the neighborhood.
func (n Neighborhood) Offsets() [][2]int {
	if n == VonNeumann {
		return vonNeumannOffsets[:]
	}
	return mooreOffsets[:]
}

// LiveNeighbors counts the non-background neighbors of (x, y). Border
// behavior follows the grid's own edge policy.
func LiveNeighbors(g Grid, x, y int, n Neighborhood) int {
	count := 0
	for _, d := range n.Offsets() {
		if g.Get(x+d[0], y+d[1]) != 0 {
			count++
		}
	}
	return count
}
