package atom

import "toy-atom/internal/core"

// MaxShell is the highest shell with an entry in the energy table.
const MaxShell = 6

var (
	// ElectronColor is the base color of an electron that is not highlighted.
	ElectronColor = [4]uint8{0x00, 0x11, 0x11, 0xff}
	// SelectedColor marks the highlighted electron.
	SelectedColor = [4]uint8{0x11, 0x11, 0x22, 0xff}
	// NucleusColor is the color of the stationary nucleus.
	NucleusColor = [4]uint8{0xdd, 0xaa, 0x11, 0xff}
	// PhotonColor is the faint color shared by all photons.
	PhotonColor = [4]uint8{1, 1, 0, 1}
)

// ElectronID is a stable handle into a World's electron arena.
type ElectronID int

// Electron is a particle bound to a shell.
type Electron struct {
	P     Particle
	Shell uint8
}

// NewElectron creates an electron parked at the default spawn point.
func NewElectron(shell uint8) Electron {
	return Electron{P: NewParticle(16, 16), Shell: clampShell(int(shell))}
}

// X returns the horizontal position.
func (e *Electron) X() float32 { return e.P.X() }

// Y returns the vertical position.
func (e *Electron) Y() float32 { return e.P.Y() }

// Update steers the electron towards its orbit slot for frame. Electrons never
// change their own shell.
func (e *Electron) Update(b Bounds, phys Physics, frame uint8) bool {
	tx, ty := orbit.Position(frame, float32(e.Shell), b.W/2, b.H/2)
	e.P.Update(b, phys, tx, ty)
	return false
}

// Draw rasterises the electron into f.
func (e *Electron) Draw(f *core.Frame, intensity float32) {
	e.P.Draw(f, intensity)
}

// shiftShell moves the shell by delta, saturating within [0, MaxShell].
func (e *Electron) shiftShell(delta int) {
	e.Shell = clampShell(int(e.Shell) + delta)
}

func clampShell(s int) uint8 {
	if s < 0 {
		return 0
	}
	if s > MaxShell {
		return MaxShell
	}
	return uint8(s)
}
