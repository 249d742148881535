package atom

import (
	"toy-atom/internal/core"
	"toy-atom/internal/render"
)

// Body is the surface shared by everything that is drawn on screen.
type Body interface {
	X() float32
	Y() float32
	Draw(f *core.Frame, intensity float32)
}

// Bounds is the box particles reflect off.
type Bounds struct {
	W, H float32
}

// Particle is a damped-spring body in screen space.
type Particle struct {
	x, y   float32
	dx, dy float32
	r      float32
	rgba   [4]uint8
}

// NewParticle places a particle at (x, y) with the default radius and an
// initial sideways kick.
func NewParticle(x, y float32) Particle {
	return Particle{x: x, y: y, r: 4, dx: 10, rgba: [4]uint8{0, 1, 1, 255}}
}

// X returns the horizontal position.
func (p *Particle) X() float32 { return p.x }

// Y returns the vertical position.
func (p *Particle) Y() float32 { return p.y }

// Velocity returns the current per-tick displacement.
func (p *Particle) Velocity() (float32, float32) { return p.dx, p.dy }

// Radius returns the draw radius.
func (p *Particle) Radius() float32 { return p.r }

// Color returns the base RGBA color.
func (p *Particle) Color() [4]uint8 { return p.rgba }

// SetColor replaces the base RGBA color.
func (p *Particle) SetColor(rgba [4]uint8) { p.rgba = rgba }

// Update pulls the particle towards (tx, ty). Velocity flips when the disc
// overlaps a wall, then the spring and damping are applied and the position
// integrated. It never reports a terminal condition.
func (p *Particle) Update(b Bounds, phys Physics, tx, ty float32) bool {
	if p.x+p.r > b.W || p.x-p.r < 0 {
		p.dx = -p.dx
	}
	if p.y+p.r > b.H || p.y-p.r < 0 {
		p.dy = -p.dy
	}

	p.dx += (tx - p.x) * phys.Attraction
	p.dy += (ty - p.y) * phys.Attraction

	p.dx *= phys.Damping
	p.dy *= phys.Damping

	p.x += p.dx
	p.y += p.dy
	return false
}

// Draw rasterises the particle into f.
func (p *Particle) Draw(f *core.Frame, intensity float32) {
	render.DrawDisc(f, p.x, p.y, p.r, p.rgba, intensity)
}
