package core

// Size describes the dimensions of a simulation surface in pixels.
type Size struct {
	W int
	H int
}

// Sim defines the contract a frontend drives once per frame.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Draw(dst *Frame)
}

// Controller is implemented by sims that accept discrete user commands.
type Controller interface {
	Command(cmd Command)
}

// EventSource is implemented by sims that report what happened during a tick.
type EventSource interface {
	DrainEvents() []Event
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
