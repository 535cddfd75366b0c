package core

// Point identifies a cell by grid coordinates. Y grows downward so that
// row-major iteration matches top-to-bottom rendering.
type Point struct {
	X, Y int
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Heading is one of the four cardinal directions an agent can face.
type Heading uint8

// Headings in clockwise order, so turning right is +1 mod 4.
const (
	North Heading = iota
	East
	South
	West
)

// Delta returns the unit move vector for the heading. North decreases Y.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// TurnRight returns the heading rotated 90 degrees clockwise.
func (h Heading) TurnRight() Heading { return (h + 1) % 4 }

// TurnLeft returns the heading rotated 90 degrees counter-clockwise.
func (h Heading) TurnLeft() Heading { return (h + 3) % 4 }

// String returns a lowercase direction name.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	}
	return "unknown"
}
