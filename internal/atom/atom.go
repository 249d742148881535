package atom

import (
	"toy-atom/internal/core"
	"toy-atom/internal/render"
	pcore "toy-atom/pkg/core"
)

// World is the simulation state: an append-only electron arena, the active
// photons in insertion order, and the wrapping frame counter. It is not safe
// for concurrent use.
type World struct {
	cfg    Config
	bounds Bounds

	rng       *pcore.RNG
	electrons []Electron
	photons   []*Photon
	frame     uint8
	selected  int

	nucleus Particle
	events  []core.Event
}

// New returns a World with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a World configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	w := &World{
		cfg:    cfg,
		bounds: Bounds{W: float32(cfg.Width), H: float32(cfg.Height)},
		rng:    pcore.NewRNG(cfg.Seed),
	}
	w.Reset(0)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "atom" }

// Size reports the surface dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset restores the initial population. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := uint32(seed)
	if seed == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)

	n := w.cfg.Electrons
	if n <= 0 {
		n = 1
	}
	w.electrons = w.electrons[:0]
	for i := 0; i < n; i++ {
		w.electrons = append(w.electrons, NewElectron(w.cfg.InitialShell))
	}
	w.photons = w.photons[:0]
	w.frame = 0
	w.selected = 0
	w.events = w.events[:0]

	w.nucleus = NewParticle(w.bounds.W/2, w.bounds.H/2)
	w.nucleus.rgba = NucleusColor
}

// Frame returns the current frame counter.
func (w *World) Frame() uint8 { return w.frame }

// Electrons exposes the electron arena. Handles are indices into it.
func (w *World) Electrons() []Electron { return w.electrons }

// Photons exposes the active photons in insertion order.
func (w *World) Photons() []*Photon { return w.photons }

// Selected returns the handle of the highlighted electron.
func (w *World) Selected() ElectronID { return ElectronID(w.selected) }

// SelectedEnergy returns the energy of the highlighted electron's shell.
func (w *World) SelectedEnergy() float32 {
	return Energy(w.electrons[w.selected].Shell)
}

// Step advances one tick using the internal frame counter.
func (w *World) Step() {
	w.Tick(w.frame)
	w.frame++
}

// Tick moves every electron towards its orbit slot for frame, then every
// photon towards its target in insertion order. Collided and expired photons
// are removed afterwards, preserving the order of the survivors.
func (w *World) Tick(frame uint8) {
	p := w.cfg.Params
	for i := range w.electrons {
		w.electrons[i].Update(w.bounds, p.Electron, frame)
	}

	for _, ph := range w.photons {
		if ph.Update(w.bounds, p.Photon, p.CollisionThreshold, w.electrons) {
			w.emit(core.EventCollided, ph)
			continue
		}
		if p.MaxPhotonAge > 0 && ph.age >= p.MaxPhotonAge {
			ph.expire()
			w.emit(core.EventExpired, ph)
		}
	}

	alive := w.photons[:0]
	for _, ph := range w.photons {
		if ph.state == PhotonTraveling {
			alive = append(alive, ph)
		}
	}
	for i := len(alive); i < len(w.photons); i++ {
		w.photons[i] = nil
	}
	w.photons = alive
}

// Render draws one frame into an RGBA buffer of the given dimensions: trail
// decay and shell rings first, then the nucleus, electrons and photons.
func (w *World) Render(buf []byte, width, height int) {
	if width <= 0 || height <= 0 || len(buf) < 4*width*height {
		return
	}
	w.Draw(&core.Frame{W: width, H: height, Pix: buf[:4*width*height]})
}

// Draw is Render on a core.Frame.
func (w *World) Draw(f *core.Frame) {
	p := w.cfg.Params
	render.Decay(f, p.DecayStep)
	render.Rings(f, ShellSpacing, p.RingMaxRadius, p.RingValue)

	for _, b := range w.Bodies() {
		b.Draw(f, p.Intensity)
	}
}

// Bodies lists everything visible in draw order: nucleus, electrons, photons.
func (w *World) Bodies() []Body {
	out := make([]Body, 0, 1+len(w.electrons)+len(w.photons))
	out = append(out, &w.nucleus)
	for i := range w.electrons {
		out = append(out, &w.electrons[i])
	}
	for _, ph := range w.photons {
		out = append(out, ph)
	}
	return out
}

// SelectNextElectron moves the highlight cyclically to the next electron.
func (w *World) SelectNextElectron() {
	w.electrons[w.selected].P.SetColor(ElectronColor)
	w.selected++
	if w.selected >= len(w.electrons) {
		w.selected = 0
	}
	w.electrons[w.selected].P.SetColor(SelectedColor)
}

// EmitPhoton sends a photon away from the highlighted electron. The electron
// is raised one shell immediately; the photon's later collision only touches
// its stand-in target.
func (w *World) EmitPhoton() {
	id := ElectronID(w.selected)
	ph := NewPhoton(w.rng, w.bounds, w.electrons, id, true)
	w.photons = append(w.photons, ph)
	w.electrons[id].shiftShell(1)
	w.emit(core.EventEmitted, ph)
}

// AbsorbPhoton sends a photon from a random edge point towards the
// highlighted electron. The shell only changes when the photon arrives.
func (w *World) AbsorbPhoton() {
	id := ElectronID(w.selected)
	ph := NewPhoton(w.rng, w.bounds, w.electrons, id, false)
	w.photons = append(w.photons, ph)
	w.emit(core.EventAbsorbing, ph)
}

// AddElectron appends an electron on the given shell and returns its handle.
func (w *World) AddElectron(shell uint8) ElectronID {
	w.electrons = append(w.electrons, NewElectron(shell))
	return ElectronID(len(w.electrons) - 1)
}

// Command dispatches a frontend command.
func (w *World) Command(cmd core.Command) {
	switch cmd {
	case core.CommandSelectNext:
		w.SelectNextElectron()
	case core.CommandEmit:
		w.EmitPhoton()
	case core.CommandAbsorb:
		w.AbsorbPhoton()
	case core.CommandAddElectron:
		w.AddElectron(w.cfg.InitialShell)
	}
}

// DrainEvents returns the events recorded since the previous call.
func (w *World) DrainEvents() []core.Event {
	if len(w.events) == 0 {
		return nil
	}
	out := make([]core.Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}

func (w *World) emit(kind core.EventKind, ph *Photon) {
	ev := core.Event{Kind: kind, Electron: int(ph.target)}
	ev.Shell = w.electrons[ph.target].Shell
	w.events = append(w.events, ev)
}

func init() {
	core.Register("atom", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
