//go:build ebiten

package app

import (
	"time"

	"toy-atom/internal/audio"
	"toy-atom/internal/core"
	"toy-atom/internal/render"
	"toy-atom/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// commandKeys is checked in order so simultaneous presses apply deterministically.
var commandKeys = []struct {
	key ebiten.Key
	cmd core.Command
}{
	{ebiten.KeySpace, core.CommandSelectNext},
	{ebiten.KeyJ, core.CommandAbsorb},
	{ebiten.KeyK, core.CommandEmit},
	{ebiten.KeyA, core.CommandAddElectron},
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	frame   *core.Frame
	painter *render.FramePainter
	overlay *ui.Overlay
	sound   *audio.Player

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. sound may be nil.
func New(sim core.Sim, scale int, seed int64, sound *audio.Player) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		frame:   core.NewFrame(size.W, size.H),
		painter: render.NewFramePainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		sound:   sound,
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.frame.Clear()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if ctl, ok := g.sim.(core.Controller); ok {
		for _, ck := range commandKeys {
			if inpututil.IsKeyJustPressed(ck.key) {
				ctl.Command(ck.cmd)
			}
		}
	}

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused) || g.tickOnce {
		g.sim.Step()
		g.sim.Draw(g.frame)
		g.tickOnce = false
	}

	if src, ok := g.sim.(core.EventSource); ok {
		events := src.DrainEvents()
		if g.sound != nil {
			g.sound.Play(events)
		}
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
