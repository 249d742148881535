package atom

import "toy-atom/internal/core"

// TransitResult summarises how a single photon fared.
type TransitResult struct {
	Ticks    int
	Collided bool
	Expired  bool
	Shell    uint8
}

// MeasureTransit resets a world built from cfg, fires one photon at the first
// electron and steps until the photon leaves the active set or maxTicks pass.
func MeasureTransit(cfg Config, emit bool, maxTicks int) TransitResult {
	w := NewWithConfig(cfg)
	if emit {
		w.EmitPhoton()
	} else {
		w.AbsorbPhoton()
	}
	w.DrainEvents()

	var res TransitResult
	for res.Ticks < maxTicks && len(w.photons) > 0 {
		w.Step()
		res.Ticks++
	}
	for _, ev := range w.DrainEvents() {
		switch ev.Kind {
		case core.EventCollided:
			res.Collided = true
		case core.EventExpired:
			res.Expired = true
		}
	}
	res.Shell = w.electrons[0].Shell
	return res
}
