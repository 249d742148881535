package atom

import (
	"math"

	"toy-atom/internal/core"
	pcore "toy-atom/pkg/core"
)

// edgeInset keeps spawn points away from the screen border.
const edgeInset = 10

// PhotonState tracks where a photon is in its lifecycle.
type PhotonState uint8

const (
	PhotonTraveling PhotonState = iota
	PhotonCollided
	PhotonExpired
)

func (s PhotonState) String() string {
	switch s {
	case PhotonTraveling:
		return "traveling"
	case PhotonCollided:
		return "collided"
	case PhotonExpired:
		return "expired"
	}
	return "unknown"
}

// Photon flies towards a target electron. An incoming photon targets an
// electron in the world's arena; an outgoing one owns a stand-in electron
// parked at its exit point.
type Photon struct {
	p      Particle
	target ElectronID
	anchor *Electron
	age    int
	state  PhotonState
}

// NewPhoton spawns a photon for the electron at id. When leaving is true the
// photon starts on the electron and flies to a random edge point; otherwise it
// starts on that edge point and flies to the electron.
func NewPhoton(rng *pcore.RNG, b Bounds, electrons []Electron, id ElectronID, leaving bool) *Photon {
	var x, y float32 = edgeInset, edgeInset

	onXEdge := rng.Bool()
	if rng.Bool() {
		if onXEdge {
			x = b.W - edgeInset
		} else {
			y = b.H - edgeInset
		}
	}
	if onXEdge {
		y = rng.Float32Mod(b.H)
	} else {
		x = rng.Float32Mod(b.W)
	}

	edge := Particle{x: x, y: y, r: 4, rgba: PhotonColor}

	ph := &Photon{target: id}
	if leaving {
		ph.p = electrons[id].P
		ph.anchor = &Electron{P: edge}
	} else {
		ph.p = edge
	}
	ph.p.rgba = PhotonColor
	return ph
}

// X returns the horizontal position.
func (ph *Photon) X() float32 { return ph.p.X() }

// Y returns the vertical position.
func (ph *Photon) Y() float32 { return ph.p.Y() }

// State reports the lifecycle state.
func (ph *Photon) State() PhotonState { return ph.state }

// Age reports how many updates the photon has survived.
func (ph *Photon) Age() int { return ph.age }

// Leaving reports whether the photon flies away from its source electron.
func (ph *Photon) Leaving() bool { return ph.anchor != nil }

// Target returns the arena handle of the source or destination electron.
func (ph *Photon) Target() ElectronID { return ph.target }

func (ph *Photon) resolve(electrons []Electron) *Electron {
	if ph.anchor != nil {
		return ph.anchor
	}
	return &electrons[ph.target]
}

// Update advances the photon towards its target. On reaching it the target
// loses one shell and Update reports true; the photon is then collided and
// must be dropped by the caller.
func (ph *Photon) Update(b Bounds, phys Physics, threshold float32, electrons []Electron) bool {
	if ph.state != PhotonTraveling {
		return false
	}
	ph.age++
	t := ph.resolve(electrons)
	ph.p.Update(b, phys, t.X(), t.Y())

	d := math.Hypot(float64(ph.p.X()-t.X()), float64(ph.p.Y()-t.Y()))
	if d >= float64(threshold) {
		return false
	}
	t.shiftShell(-1)
	ph.state = PhotonCollided
	return true
}

// expire marks a travelling photon as discarded.
func (ph *Photon) expire() {
	if ph.state == PhotonTraveling {
		ph.state = PhotonExpired
	}
}

// Draw rasterises the photon into f.
func (ph *Photon) Draw(f *core.Frame, intensity float32) {
	ph.p.Draw(f, intensity)
}
