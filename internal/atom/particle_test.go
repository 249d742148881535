package atom

import (
	"math"
	"testing"

	pcore "toy-atom/pkg/core"
)

func TestParticleUpdateNeverReportsCollision(t *testing.T) {
	p := NewParticle(16, 16)
	phys := DefaultConfig().Params.Electron
	for i := 0; i < 10; i++ {
		if p.Update(Bounds{W: 320, H: 240}, phys, 160, 120) {
			t.Fatal("Particle.Update must always return false")
		}
	}
}

func TestParticleSpringStep(t *testing.T) {
	p := Particle{x: 100, y: 100, r: 4}
	p.Update(Bounds{W: 320, H: 240}, Physics{Attraction: 0.5, Damping: 0.5}, 110, 90)
	// dx = (10*0.5)*0.5 = 2.5, dy = (-10*0.5)*0.5 = -2.5
	if p.x != 102.5 || p.y != 97.5 {
		t.Fatalf("position after one step = (%v,%v), want (102.5,97.5)", p.x, p.y)
	}
}

func TestParticleReflectsOffWalls(t *testing.T) {
	p := Particle{x: 318, y: 120, dx: 5, r: 4}
	p.Update(Bounds{W: 320, H: 240}, Physics{Attraction: 0, Damping: 1}, 318, 120)
	if p.dx != -5 {
		t.Fatalf("dx after wall overlap = %v, want -5", p.dx)
	}
	q := Particle{x: 50, y: 2, dy: -3, r: 4}
	q.Update(Bounds{W: 320, H: 240}, Physics{Attraction: 0, Damping: 1}, 50, 2)
	if q.dy != 3 {
		t.Fatalf("dy after floor overlap = %v, want 3", q.dy)
	}
}

func TestParticleStaysInBounds(t *testing.T) {
	// Reflection reacts to radius overlap, so the centre may dip up to one
	// radius past a wall before turning around.
	const eps = 4
	b := Bounds{W: 320, H: 240}
	phys := DefaultConfig().Params.Electron
	rng := pcore.NewRNG(5)
	for trial := 0; trial < 100; trial++ {
		p := NewParticle(4+rng.Float32Mod(b.W-8), 4+rng.Float32Mod(b.H-8))
		var tx, ty float32
		for i := 0; i < 500; i++ {
			if i%50 == 0 {
				tx, ty = rng.Float32Mod(b.W), rng.Float32Mod(b.H)
			}
			p.Update(b, phys, tx, ty)
			if p.x < -eps || p.x > b.W+eps || p.y < -eps || p.y > b.H+eps {
				t.Fatalf("trial %d step %d: particle escaped to (%v,%v)", trial, i, p.x, p.y)
			}
			if math.IsNaN(float64(p.x)) || math.IsNaN(float64(p.y)) {
				t.Fatalf("trial %d step %d: NaN position", trial, i)
			}
		}
	}
}

func TestBodiesImplementInterface(t *testing.T) {
	var bodies []Body
	p := NewParticle(1, 2)
	e := NewElectron(1)
	ph := &Photon{p: NewParticle(3, 4)}
	bodies = append(bodies, &p, &e, ph)
	want := [][2]float32{{1, 2}, {16, 16}, {3, 4}}
	for i, b := range bodies {
		if b.X() != want[i][0] || b.Y() != want[i][1] {
			t.Fatalf("body %d at (%v,%v), want %v", i, b.X(), b.Y(), want[i])
		}
	}
}
