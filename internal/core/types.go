package core

// Size describes the dimensions of a simulation window or bounded grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
// Drivers call Step once per generation and read cells through Grid. Step
// fails only on policy violations such as a strict boundary exit; every
// other rule application is total.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step() error
	Generation() int
	Grid() Grid
}

// Factory constructs a Sim from flag-style key/value configuration. Invalid
// configuration fails here, before any stepping starts.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
