package core

// Size describes the dimensions of a simulation's display surface.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a simulation driver must implement to be
// run from the demo binary.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()

	// WithImage calls fn with the RGBA pixels of the current generation.
	// The slice is valid only for the duration of the call: the next Step
	// may re-label its backing buffer.
	WithImage(fn func(pix []byte))
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

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

// Wrap maps i+offset onto [0, max) toroidally.
func Wrap(i, offset, max int) int {
	return ((i+offset)%max + max) % max
}
