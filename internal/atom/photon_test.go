package atom

import (
	"math"
	"testing"

	pcore "toy-atom/pkg/core"
)

var screen = Bounds{W: 320, H: 240}

func TestPhotonCollidesOnceWithStationaryTarget(t *testing.T) {
	electrons := []Electron{{P: Particle{x: 160, y: 120, r: 4}, Shell: 2}}
	phys := DefaultConfig().Params.Photon
	ph := NewPhoton(pcore.NewRNG(pcore.DefaultSeed), screen, electrons, 0, false)

	start := math.Hypot(float64(ph.X()-160), float64(ph.Y()-120))
	if start <= 10 {
		t.Fatalf("photon spawned too close to its target: %v", start)
	}

	hits := 0
	for i := 0; i < 1000; i++ {
		if ph.Update(screen, phys, 10, electrons) {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("expected exactly one collision, got %d", hits)
	}
	if ph.State() != PhotonCollided {
		t.Fatalf("state = %v, want collided", ph.State())
	}
	if electrons[0].Shell != 1 {
		t.Fatalf("target shell = %d, want 1", electrons[0].Shell)
	}
}

func TestIncomingPhotonSpawnsOnEdge(t *testing.T) {
	electrons := []Electron{NewElectron(2)}
	rng := pcore.NewRNG(1)
	for i := 0; i < 200; i++ {
		ph := NewPhoton(rng, screen, electrons, 0, false)
		onVertical := ph.X() == edgeInset || ph.X() == screen.W-edgeInset
		onHorizontal := ph.Y() == edgeInset || ph.Y() == screen.H-edgeInset
		if !onVertical && !onHorizontal {
			t.Fatalf("photon %d spawned off the edge lines at (%v,%v)", i, ph.X(), ph.Y())
		}
		if ph.X() < 0 || ph.X() >= screen.W || ph.Y() < 0 || ph.Y() >= screen.H {
			t.Fatalf("photon %d spawned off screen at (%v,%v)", i, ph.X(), ph.Y())
		}
		if ph.Leaving() || ph.Target() != 0 {
			t.Fatal("incoming photon must target the arena electron")
		}
		if ph.p.Color() != PhotonColor {
			t.Fatalf("photon color = %v", ph.p.Color())
		}
	}
}

func TestLeavingPhotonStartsOnSourceAndHitsStandIn(t *testing.T) {
	electrons := []Electron{{P: Particle{x: 100, y: 80, r: 4}, Shell: 3}}
	ph := NewPhoton(pcore.NewRNG(pcore.DefaultSeed), screen, electrons, 0, true)
	if ph.X() != 100 || ph.Y() != 80 {
		t.Fatalf("leaving photon starts at (%v,%v), want the source (100,80)", ph.X(), ph.Y())
	}
	if !ph.Leaving() {
		t.Fatal("photon should report leaving")
	}

	phys := DefaultConfig().Params.Photon
	collided := false
	for i := 0; i < 1000 && !collided; i++ {
		collided = ph.Update(screen, phys, 10, electrons)
	}
	if !collided {
		t.Fatal("leaving photon never reached its exit point")
	}
	if electrons[0].Shell != 3 {
		t.Fatalf("source shell changed to %d on stand-in collision", electrons[0].Shell)
	}
	if ph.anchor.Shell != 0 {
		t.Fatalf("stand-in shell = %d, want saturation at 0", ph.anchor.Shell)
	}
}

func TestPhotonCollisionSaturatesAtShellZero(t *testing.T) {
	electrons := []Electron{{P: Particle{x: 160, y: 120, r: 4}, Shell: 0}}
	ph := &Photon{p: Particle{x: 161, y: 120, r: 4}}
	if !ph.Update(screen, DefaultConfig().Params.Photon, 10, electrons) {
		t.Fatal("photon inside the threshold should collide")
	}
	if electrons[0].Shell != 0 {
		t.Fatalf("shell underflowed to %d", electrons[0].Shell)
	}
}

func TestPhotonStateString(t *testing.T) {
	for s, want := range map[PhotonState]string{
		PhotonTraveling: "traveling",
		PhotonCollided:  "collided",
		PhotonExpired:   "expired",
		PhotonState(9):  "unknown",
	} {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
