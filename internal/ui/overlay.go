//go:build ebiten

package ui

import (
	"image/color"

	"toy-atom/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type energyReporter interface {
	SelectedEnergy() float32
}

// Overlay draws the energy readout and an optional status line over the
// simulation view.
type Overlay struct {
	sim        core.Sim
	showStatus bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update toggles the status line with Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.showStatus = !o.showStatus
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	face := basicfont.Face7x13
	if r, ok := o.sim.(energyReporter); ok {
		text.Draw(screen, EnergyLabel(r.SelectedEnergy()), face, 10, 20, color.White)
	}
	if !o.showStatus {
		return
	}
	if p, ok := o.sim.(core.ParameterProvider); ok {
		h := screen.Bounds().Dy()
		text.Draw(screen, StatusLine(p.Parameters()), face, 10, h-10, color.RGBA{R: 180, G: 180, B: 200, A: 255})
	}
}
